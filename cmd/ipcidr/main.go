// Copyright (c) 2026 Netfabrica, Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// ipcidr is a small command-line front end for the ip package: it
// canonicalizes CIDR ranges and answers containment queries.  Query commands
// exit 0 on a match and 1 on a miss, so they compose in shell scripts the
// way grep does.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netfabrica/ipcidr/ip"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.WithError(err).Error("Command failed")
		os.Exit(2)
	}
}

func rootCmd() *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:           "ipcidr",
		Short:         "Parse, canonicalize and match IP address ranges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.AddCommand(canonCmd(), matchCmd(), coversCmd())
	return cmd
}

func canonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canon <cidr>",
		Short: "Print the canonical form of a CIDR range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ip.ParseIPRangeOrAddr(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <cidr> <addr>",
		Short: "Test whether an address falls within a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, err := ip.ParseIPRangeOrAddr(args[0])
			if err != nil {
				return err
			}
			// A bare address is the full-width range containing only
			// itself, so the point test is a Covers query.
			inner, err := ip.ParseIPRangeOrAddr(args[1])
			if err != nil {
				return err
			}
			return report(cmd, outer, inner)
		},
	}
}

func coversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "covers <outer> <inner>",
		Short: "Test whether one range covers another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, err := ip.ParseIPRange(args[0])
			if err != nil {
				return err
			}
			inner, err := ip.ParseIPRange(args[1])
			if err != nil {
				return err
			}
			return report(cmd, outer, inner)
		},
	}
}

func report(cmd *cobra.Command, outer, inner ip.IPRange) error {
	covered := outer.Covers(inner)
	log.WithFields(log.Fields{
		"outer": outer,
		"inner": inner,
	}).Debug("Containment query")
	fmt.Fprintln(cmd.OutOrStdout(), covered)
	if !covered {
		os.Exit(1)
	}
	return nil
}
