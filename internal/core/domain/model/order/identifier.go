package order

import "strings"

// missingCell is the text a blank spreadsheet cell turns into once it has been
// stringified upstream; it must be treated as blank.
const missingCell = "nan"

// DeriveIdentifier picks the business key for a spreadsheet row: the purchase
// order, or the sales order when the purchase order is blank. The second
// result is false when neither yields a usable key.
func DeriveIdentifier(purchaseOrder, salesOrder string) (string, bool) {
	id := strings.TrimSpace(purchaseOrder)
	if isBlank(id) {
		id = strings.TrimSpace(salesOrder)
	}
	if isBlank(id) {
		return "", false
	}
	return id, true
}

func isBlank(s string) bool {
	return s == "" || strings.EqualFold(s, missingCell)
}
