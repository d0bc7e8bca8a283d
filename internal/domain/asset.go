package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decimal хранит цену ровно в том виде, в каком ее отдал источник.
// В float64 не переводим, иначе "65000.10" может превратиться во что-то другое.
type Decimal string

func (d Decimal) String() string { return string(d) }

func (d Decimal) IsZero() bool { return d == "" }

// Dollars - цена с ведущим $
func (d Decimal) Dollars() string { return "$" + string(d) }

// UnmarshalJSON принимает и строку "65000.0", и голое число 65000.0
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
		}
		*d = Decimal(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDecimal, data)
	}
	*d = Decimal(n.String())
	return nil
}

type AssetRecord struct {
	ID       string
	Symbol   string
	Name     string
	PriceUSD Decimal
}

func (a AssetRecord) Validate() error {
	if a.ID == "" || a.Symbol == "" || a.Name == "" || a.PriceUSD.IsZero() {
		return fmt.Errorf("incomplete asset record %q", a.ID)
	}
	return nil
}
