// Copyright © 2026 Simplest OT Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package ot

import "testing"

// transfer wires a Sender and a fresh Receiver together for one round
// without any transport: it copies the Sender's public key, the
// Receiver's request, and the Sender's response by hand, the way a
// caller would marshal them over a wire.
func transfer(t *testing.T, cfg Config, sender *Sender, index string, entries []Entry) string {
	t.Helper()

	senderKey := sender.PublishKey()

	receiver, err := NewReceiver(cfg, senderKey)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Destroy()

	request, err := receiver.BuildRequest(index)
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	ciphers, err := sender.Retrieve(request, entries)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	result, err := receiver.DecryptResponse(ciphers)
	if err != nil {
		t.Fatalf("DecryptResponse: %v", err)
	}
	return result[index]
}

func TestScenarioTrivialOneOfOne(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	entries := []Entry{{Index: "only", Value: "the one and only value"}}
	got := transfer(t, cfg, sender, "only", entries)
	if got != "the one and only value" {
		t.Fatalf("got %q, want %q", got, "the one and only value")
	}
}

func TestScenarioOneOfThreeMiddlePick(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	entries := []Entry{
		{Index: "left", Value: "left value"},
		{Index: "middle", Value: "middle value"},
		{Index: "right", Value: "right value"},
	}

	got := transfer(t, cfg, sender, "middle", entries)
	if got != "middle value" {
		t.Fatalf("got %q, want %q", got, "middle value")
	}

	senderKey := sender.PublishKey()
	receiver, err := NewReceiver(cfg, senderKey)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Destroy()

	request, err := receiver.BuildRequest("middle")
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	ciphers, err := sender.Retrieve(request, entries)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	decoy, err := NewReceiver(cfg, senderKey)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer decoy.Destroy()
	if _, err := decoy.BuildRequest("left"); err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	if _, err := decoy.DecryptResponse(ciphers); err == nil {
		t.Fatal("a receiver built for a different index decrypted someone else's response")
	}
}

func TestScenarioMultiRoundReuseAcrossReceivers(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	entries := []Entry{
		{Index: "a", Value: "value a"},
		{Index: "b", Value: "value b"},
	}

	if got := transfer(t, cfg, sender, "a", entries); got != "value a" {
		t.Fatalf("round 1: got %q, want %q", got, "value a")
	}
	if got := transfer(t, cfg, sender, "b", entries); got != "value b" {
		t.Fatalf("round 2: got %q, want %q", got, "value b")
	}
	if got := transfer(t, cfg, sender, "a", entries); got != "value a" {
		t.Fatalf("round 3 (repeat index): got %q, want %q", got, "value a")
	}

	sender.mu.Lock()
	cacheSize := len(sender.cache)
	sender.mu.Unlock()
	if cacheSize != 2 {
		t.Fatalf("indexOTU cache has %d entries, want 2", cacheSize)
	}
}

// TestScenarioMultiIndexSingleReceiver exercises spec.md's general
// accumulation contract directly: one Receiver calls BuildRequest
// twice for two different indices, then resolves both in a single
// DecryptResponse call against one combined ciphers map.
func TestScenarioMultiIndexSingleReceiver(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	entries := []Entry{
		{Index: "k1", Value: "v1"},
		{Index: "k2", Value: "v2"},
		{Index: "k3", Value: "v3"},
	}

	senderKey := sender.PublishKey()
	receiver, err := NewReceiver(cfg, senderKey)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Destroy()

	r1, err := receiver.BuildRequest("k1")
	if err != nil {
		t.Fatalf("BuildRequest(k1): %v", err)
	}
	r3, err := receiver.BuildRequest("k3")
	if err != nil {
		t.Fatalf("BuildRequest(k3): %v", err)
	}

	ciphers1, err := sender.Retrieve(r1, entries)
	if err != nil {
		t.Fatalf("Retrieve(r1): %v", err)
	}
	ciphers3, err := sender.Retrieve(r3, entries)
	if err != nil {
		t.Fatalf("Retrieve(r3): %v", err)
	}

	combined := make(Ciphers, len(ciphers1)+len(ciphers3))
	for k, v := range ciphers1 {
		combined[k] = v
	}
	for k, v := range ciphers3 {
		combined[k] = v
	}

	result, err := receiver.DecryptResponse(combined)
	if err != nil {
		t.Fatalf("DecryptResponse: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d results, want 2", len(result))
	}
	if result["k1"] != "v1" {
		t.Fatalf("got %q, want %q", result["k1"], "v1")
	}
	if result["k3"] != "v3" {
		t.Fatalf("got %q, want %q", result["k3"], "v3")
	}
	if _, ok := result["k2"]; ok {
		t.Fatal("decrypted an index that was never requested")
	}
}

func TestScenarioTamperedCiphertextFailsAuth(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	senderKey := sender.PublishKey()
	entries := []Entry{{Index: "x", Value: "tamper me"}}

	receiver, err := NewReceiver(cfg, senderKey)
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Destroy()

	request, err := receiver.BuildRequest("x")
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	ciphers, err := sender.Retrieve(request, entries)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	for k, v := range ciphers {
		tampered := make([]byte, len(v))
		copy(tampered, v)
		tampered[len(tampered)-1] ^= 0x01
		ciphers[k] = tampered
	}

	if _, err := receiver.DecryptResponse(ciphers); err != ErrAuthFailed {
		t.Fatalf("got %v, want ErrAuthFailed", err)
	}
}

func TestScenarioWrongSenderKeyFailsToDecrypt(t *testing.T) {
	cfg := DefaultConfig()
	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	impostor, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer impostor.Destroy()

	entries := []Entry{{Index: "x", Value: "value"}}

	receiver, err := NewReceiver(cfg, sender.PublishKey())
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer receiver.Destroy()

	request, err := receiver.BuildRequest("x")
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	ciphers, err := impostor.Retrieve(request, entries)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	_, err = receiver.DecryptResponse(ciphers)
	if err != ErrNoMatchingCipher && err != ErrAuthFailed {
		t.Fatalf("got %v, want ErrNoMatchingCipher or ErrAuthFailed", err)
	}
}

func TestScenarioOversizedIndexRejectedByBothRoles(t *testing.T) {
	cfg := DefaultConfig()
	oversized := make([]byte, 33)
	for i := range oversized {
		oversized[i] = 'a'
	}

	sender, err := NewSender(cfg)
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}
	defer sender.Destroy()

	validReceiver, err := NewReceiver(cfg, sender.PublishKey())
	if err != nil {
		t.Fatalf("NewReceiver: %v", err)
	}
	defer validReceiver.Destroy()

	if _, err := validReceiver.BuildRequest(string(oversized)); err != ErrInvalidIndex {
		t.Fatalf("BuildRequest: got %v, want ErrInvalidIndex", err)
	}

	entries := []Entry{{Index: string(oversized), Value: "value"}}
	request, err := validReceiver.BuildRequest("valid")
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	if _, err := sender.Retrieve(request, entries); err != ErrInvalidIndex {
		t.Fatalf("Retrieve: got %v, want ErrInvalidIndex", err)
	}
}
