package artworks

import (
	"fmt"
	"strings"
	"time"

	"studio-app/internal/domain/validate"
)

// Validate checks a draft against the business rules and returns the
// violations in the order the rules are stated. Create requires the
// identity fields; update only checks what the draft carries.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.Title != nil {
		if d.Title == nil || strings.TrimSpace(*d.Title) == "" {
			errs = append(errs, "Title is required")
		}
	}

	if mode == validate.Create || d.Type != nil {
		switch {
		case d.Type == nil || *d.Type == "":
			errs = append(errs, "Type is required")
		case !KnownType(*d.Type):
			errs = append(errs, fmt.Sprintf("Unknown artwork type %q", *d.Type))
		}
	}

	if d.Visibility != nil {
		switch *d.Visibility {
		case VisibilityActive, VisibilityPrivate:
		default:
			errs = append(errs, fmt.Sprintf("Unknown visibility %q", *d.Visibility))
		}
	}

	if p := d.ListingPrice.Ptr(); p != nil && *p < 0 {
		errs = append(errs, "Price cannot be negative")
	}

	if y := d.Year.Ptr(); y != nil {
		currentYear := time.Now().Year()
		if year := int(*y); year < 1800 || year > currentYear {
			errs = append(errs, fmt.Sprintf("Year must be between 1800 and %d", currentYear))
		}
	}

	if d.Dimensions != nil {
		dim := d.Dimensions.Dimensions()
		if dim.Height <= 0 || dim.Width <= 0 || (dim.Depth != nil && *dim.Depth < 0) {
			errs = append(errs, "Invalid dimensions")
		}
	}

	if d.EditionInfo != nil {
		if d.EditionInfo.Size <= 0 || d.EditionInfo.Number > d.EditionInfo.Size {
			errs = append(errs, "Invalid edition info")
		}
	}

	return errs
}

// Check verifies the cross-field rules on an assembled artwork, after a
// draft has been applied. Drafts are partial, so a rule that spans
// fields (an active listing needs an image) only holds on the merged
// entity: a patch may clear the images of an active work, or activate a
// work whose images are already stored.
func Check(a Artwork) []string {
	var errs []string

	if a.Visibility == VisibilityActive && len(a.Images) == 0 {
		errs = append(errs, "At least one image is required")
	}

	return errs
}
