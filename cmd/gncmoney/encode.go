package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// encodeCommand prints the CBOR storage form of an amount in hex.
func encodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode AMOUNT CODE",
		Short: "Encodes an amount to its CBOR storage form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			data, err := a.codec.Marshal(m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			return nil
		},
	}
}

// decodeCommand restores an amount from its hex CBOR storage form.
func decodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX",
		Short: "Decodes an amount from its CBOR storage form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex %q: %w", args[0], err)
			}
			m, err := a.codec.Unmarshal(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}
