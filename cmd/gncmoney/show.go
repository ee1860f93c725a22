package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// showCommand prints every representation of an amount.
func showCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show AMOUNT CODE",
		Short: "Shows the plain, locale, formatted, fraction and JSON forms of an amount",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			num, err := m.Numerator()
			if err != nil {
				a.log.Error().Err(err).Str("amount", m.String()).Msg("could not compute numerator")
				return err
			}
			data, err := m.MarshalJSON()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "plain:       %v\n", m.PlainString())
			fmt.Fprintf(out, "locale:      %v\n", m.LocaleString(a.tag))
			fmt.Fprintf(out, "formatted:   %v\n", m.FormattedString(a.tag))
			fmt.Fprintf(out, "numerator:   %v\n", num)
			fmt.Fprintf(out, "denominator: %v\n", m.Denominator())
			fmt.Fprintf(out, "json:        %s\n", data)
			return nil
		},
	}
}

// fractionCommand restores an amount from its stored fraction.
func fractionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fraction NUM DEN CODE",
		Short: "Converts a numerator/denominator pair to an amount",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			num, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid numerator: %w", err)
			}
			den, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid denominator: %w", err)
			}
			m, err := a.reg.NewFromFraction(num, den, args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}
