package types

import (
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex book_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 1811)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short human-facing identifier with a
// prefix, capped at 12 characters, e.g. `INV-X4Q8ZT2A`. Used for invoice
// numbers and other user-visible references.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.ReplaceAll(id, "-", "")

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_TENANT        = "tenant"
	UUID_PREFIX_USER          = "user"
	UUID_PREFIX_DESTINATION   = "dest"
	UUID_PREFIX_ACCOMMODATION = "accom"
	UUID_PREFIX_TAG           = "tag"
	UUID_PREFIX_EVENT         = "event"
	UUID_PREFIX_BOOKING       = "book"
	UUID_PREFIX_SUBSCRIPTION  = "subs"
	UUID_PREFIX_INVOICE       = "inv"
	UUID_PREFIX_INVOICE_LINE  = "inv_line"
	UUID_PREFIX_PROMOTION     = "promo"
	UUID_PREFIX_CATALOG       = "catalog"
)

const (
	SHORT_ID_PREFIX_INVOICE = "INV-"
)
