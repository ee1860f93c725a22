package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type commodity struct {
	Name   string
	Code   string
	Num    string
	Digits string
	Symbol string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "commodity", "commodity_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of commodities
	comms, err := convertDataToCommodities(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the commodities using a template
	code, err := generateGoCode(filepath.Join("scripts", "commodity", "commodity_data.tmpl"), comms)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("commodity_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCommodities(data [][]string) ([]commodity, error) {
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	comms := make([]commodity, 0, len(data))
	for _, rec := range data {
		digits, err := strconv.Atoi(rec[3])
		if err != nil || digits < -1 || digits > 18 {
			return nil, fmt.Errorf("commodity %v: invalid number of digits %q", rec[1], rec[3])
		}
		comms = append(comms, commodity{
			Name:   rec[0],
			Code:   rec[1],
			Num:    rec[2],
			Digits: rec[3],
			Symbol: symbolOf(rec[1], rec[4]),
		})
	}
	return comms, nil
}

// symbolOf completes a missing symbol from the CLDR English data.
// Codes unknown to CLDR use the code itself.
func symbolOf(code, symbol string) string {
	if symbol != "" {
		return symbol
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	return printer.Sprint(currency.Symbol(unit))
}

var printer = message.NewPrinter(language.English)

func generateGoCode(filename string, comms []commodity) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, comms)
	if err != nil {
		return nil, err
	}

	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	if _, err = writer.Write(content); err != nil {
		return err
	}
	return writer.Flush()
}
