package controllers

import (
	"fmt"
	"strconv"
	"strings"
)

// LineItem is one entry of a listItem payload: a product id plus the
// requested quantity.
type LineItem struct {
	ID  string `json:"id"`
	Qty Qty    `json:"qty"`
}

// Qty is a line-item quantity. Clients send quantities as JSON numbers or as
// numeric strings; both decode to the same normalized integer, so code after
// decoding never sees the original representation.
type Qty int

func (q *Qty) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("qty %q is not a number", s)
	}
	n := int(f)
	if float64(n) != f {
		return fmt.Errorf("qty %v is not a whole number", f)
	}
	*q = Qty(n)
	return nil
}

// validateListItems reports whether the list is usable: it must be present
// and every element needs a product id and a quantity greater than zero.
// One bad element rejects the whole list; there is no partial acceptance.
func validateListItems(listItem []LineItem) bool {
	if listItem == nil {
		return false
	}
	for _, item := range listItem {
		if item.ID == "" || item.Qty <= 0 {
			return false
		}
	}
	return true
}
