package warehouse

import (
	"regexp"
	"strings"

	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
)

// LabelContext carries the order-derived values available to display-name
// templates when a return label is generated.
type LabelContext struct {
	StoreName string
	Platform  string
}

// ResolvedAddress is the address to print on a return label, with the
// display name templates already substituted.
type ResolvedAddress struct {
	valueobject.Address
	DisplayName string `json:"displayName"`
}

// placeholderPattern matches the supported display-name placeholders,
// case-insensitively: [shop], [warehouse], [code], [platform].
var placeholderPattern = regexp.MustCompile(`(?i)\[(shop|warehouse|code|platform)\]`)

// ResolveReturnAddress chooses between the warehouse's primary address and
// its optional override, then substitutes display-name placeholders from the
// order context.
//
// The override is used only when UseDifferentReturnAddress is set and an
// override address is present. Without an order context, or when the name
// carries no placeholder syntax, the name is returned unchanged; an empty
// name falls back to the warehouse name. Placeholders that resolve to an
// empty value are left verbatim rather than erased.
func ResolveReturnAddress(w *Warehouse, orderCtx *LabelContext) ResolvedAddress {
	address := w.Address
	if w.UseDifferentReturnAddress && w.ReturnAddress != nil && !w.ReturnAddress.IsEmpty() {
		address = *w.ReturnAddress
	}

	displayName := address.Name
	if displayName == "" {
		displayName = w.Name
	} else if orderCtx != nil && placeholderPattern.MatchString(displayName) {
		displayName = substitutePlaceholders(displayName, w, orderCtx)
	}

	return ResolvedAddress{
		Address:     address.WithName(displayName),
		DisplayName: displayName,
	}
}

func substitutePlaceholders(name string, w *Warehouse, orderCtx *LabelContext) string {
	return placeholderPattern.ReplaceAllStringFunc(name, func(match string) string {
		key := strings.ToLower(strings.Trim(match, "[]"))

		var value string
		switch key {
		case "shop":
			value = orderCtx.StoreName
		case "warehouse":
			value = w.Name
		case "code":
			value = w.Code
		case "platform":
			value = orderCtx.Platform
		}

		if value == "" {
			return match
		}
		return value
	})
}
