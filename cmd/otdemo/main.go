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

// Command otdemo exercises the ot package end to end: it runs a
// Sender and a Receiver against each other entirely in memory, with
// no network transport, and prints the entry the Receiver recovered.
package main

import (
	"fmt"
	"os"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"

	"github.com/chouorlandi/simplestot/logger"
	"github.com/chouorlandi/simplestot/ot"
)

var (
	indexFlag   string
	concealFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "otdemo",
	Short: "otdemo",
	Long:  `otdemo runs a 1-out-of-N oblivious transfer round in memory and prints the chosen entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.SetLogger(log.New("cmd", "otdemo"))
		lg := logger.Logger()

		cfg := ot.Config{ConcealResponseIndices: concealFlag}

		sender, err := ot.NewSender(cfg)
		if err != nil {
			lg.Crit("Failed to create sender", "err", err)
		}
		defer sender.Destroy()

		entries := []ot.Entry{
			{Index: "alpha", Value: "value for alpha"},
			{Index: "bravo", Value: "value for bravo"},
			{Index: "charlie", Value: "value for charlie"},
		}

		receiver, err := ot.NewReceiver(cfg, sender.PublishKey())
		if err != nil {
			lg.Crit("Failed to create receiver", "err", err)
		}
		defer receiver.Destroy()

		request, err := receiver.BuildRequest(indexFlag)
		if err != nil {
			lg.Crit("Failed to build request", "index", indexFlag, "err", err)
		}

		ciphers, err := sender.Retrieve(request, entries)
		if err != nil {
			lg.Crit("Sender failed to answer request", "err", err)
		}
		lg.Info("Sender produced response", "index", indexFlag, "entries", len(ciphers))

		result, err := receiver.DecryptResponse(ciphers)
		if err != nil {
			lg.Crit("Receiver failed to decrypt response", "err", err)
		}

		fmt.Printf("recovered value for index %q: %s\n", indexFlag, result[indexFlag])
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&indexFlag, "index", "alpha", "index to retrieve")
	rootCmd.Flags().BoolVar(&concealFlag, "conceal", true, "conceal response indices from the receiver")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
