package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bookkeep/money"
)

// calcCommand applies a binary operation to two amounts of one commodity.
func calcCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc A OP B CODE",
		Short: "Adds, subtracts, multiplies or divides two amounts",
		Long:  "Applies OP, one of + - * /, to amounts A and B of commodity CODE.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.reg.Parse(args[0], args[3])
			if err != nil {
				return err
			}
			y, err := a.reg.Parse(args[2], args[3])
			if err != nil {
				return err
			}

			var z money.Money
			switch op := args[1]; op {
			case "+":
				z, err = x.Add(y)
			case "-":
				z, err = x.Sub(y)
			case "*", "x":
				z, err = x.Mul(y)
			case "/":
				z, err = x.Quo(y)
			default:
				return fmt.Errorf("unknown operator %q", op)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), z)
			return nil
		},
	}
}

// splitCommand divides an amount into parts that sum up to it.
func splitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split AMOUNT CODE PARTS",
		Short: "Splits an amount into equal parts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.reg.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			parts, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid number of parts %q: %w", args[2], err)
			}
			res, err := m.Split(parts)
			if err != nil {
				return err
			}
			for _, p := range res {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
