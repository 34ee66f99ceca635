// Package storagekey derives and classifies object-storage keys.
//
// Layout:
//
//	temp/<uuid>.<ext>, <shopId>/temp/<uuid>.<ext>        uncommitted uploads
//	<shopName>_<shopId>/profile-<file>                  shop branding, kept
//	<shopName>_<shopId>/<userName>_<orderId>/<file>     committed order files
//	<same>/converted/<name>.pdf                         converted variants
package storagekey

import (
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	tempSegment      = "temp"
	convertedSegment = "converted"
	profilePrefix    = "profile-"
	guestName        = "Guest"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SafeSegment replaces every non-alphanumeric rune with an underscore.
func SafeSegment(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

// ShopFolder returns "<safeShopName>_<shopId>".
func ShopFolder(shopName string, shopID uuid.UUID) string {
	return SafeSegment(shopName) + "_" + shopID.String()
}

// OrderFolder returns "<safeUserName>_<orderId>", using Guest for anonymous orders.
func OrderFolder(userName string, orderID uuid.UUID) string {
	safe := SafeSegment(userName)
	if safe == "" {
		safe = guestName
	}

	return safe + "_" + orderID.String()
}

// Extension returns the lowercase extension of name without the dot, or "" if none.
func Extension(name string) string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
}

// TempKey returns a fresh temp key, scoped under shopID when it is not empty.
func TempKey(shopID, ext string) string {
	name := uuid.Must(uuid.NewV7()).String()
	if ext != "" {
		name += "." + ext
	}
	if shopID != "" {
		return path.Join(shopID, tempSegment, name)
	}

	return path.Join(tempSegment, name)
}

// IsTemp reports whether key lives in a temp namespace.
func IsTemp(key string) bool {
	parts := strings.Split(key, "/")

	return parts[0] == tempSegment || (len(parts) > 1 && parts[1] == tempSegment)
}

// CommittedKey returns the permanent key of an order file.
func CommittedKey(shopFolder, orderFolder, originalName string) string {
	return shopFolder + "/" + orderFolder + "/" + path.Base(originalName)
}

// ConvertedKey returns the sibling PDF key for a committed key.
func ConvertedKey(committedKey string) string {
	dir := path.Dir(committedKey)
	base := path.Base(committedKey)
	base = strings.TrimSuffix(base, path.Ext(base))

	return dir + "/" + convertedSegment + "/" + base + ".pdf"
}

// ProfileKey returns the key a temp profile image is moved to.
func ProfileKey(shopFolder, tempKey string) string {
	return shopFolder + "/" + profilePrefix + path.Base(tempKey)
}

// IsAbsoluteURL reports whether an image reference is already a URL rather than a key.
func IsAbsoluteURL(ref string) bool {
	return strings.HasPrefix(ref, "http")
}

// Class is the sweep category of a key.
type Class int

const (
	// ClassIgnored is a root-level key.
	ClassIgnored Class = iota
	// ClassTemp is an uncommitted upload.
	ClassTemp
	// ClassProfile is shop branding, never deleted.
	ClassProfile
	// ClassOrder is a committed or converted order file.
	ClassOrder
	// ClassUnknown is any other shape, skipped.
	ClassUnknown
)

func (c Class) String() string {
	switch c {
	case ClassIgnored:
		return "ignored"
	case ClassTemp:
		return "temp"
	case ClassProfile:
		return "profile"
	case ClassOrder:
		return "order"
	default:
		return "unknown"
	}
}

// Expirable reports whether keys of this class are deleted after retention.
func (c Class) Expirable() bool {
	return c == ClassTemp || c == ClassOrder
}

// Classify buckets a key by path depth and prefix. Rules are evaluated in order.
func Classify(key string) Class {
	parts := strings.Split(key, "/")

	switch {
	case len(parts) < 2:
		return ClassIgnored
	case parts[0] == tempSegment || parts[1] == tempSegment:
		return ClassTemp
	case len(parts) == 2 && strings.HasPrefix(parts[1], profilePrefix):
		return ClassProfile
	case len(parts) >= 3:
		return ClassOrder
	default:
		return ClassUnknown
	}
}

// WithinShop reports whether key belongs to the given shop namespace:
// its temp area, its folder, or the unscoped temp area.
func WithinShop(key string, shopID uuid.UUID, shopFolder string) bool {
	parts := strings.Split(key, "/")
	if len(parts) < 2 {
		return false
	}

	return parts[0] == tempSegment ||
		parts[0] == shopID.String() ||
		parts[0] == shopFolder
}
