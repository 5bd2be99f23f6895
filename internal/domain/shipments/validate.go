package shipments

import (
	"strings"

	"studio-app/internal/domain/validate"
)

// Validate checks a shipment draft: the work being shipped, a carrier,
// and a deliverable address.
func Validate(d Draft, mode validate.Mode) []string {
	var errs []string

	if mode == validate.Create || d.ArtworkID != nil {
		if d.ArtworkID == nil || strings.TrimSpace(*d.ArtworkID) == "" {
			errs = append(errs, "Artwork is required")
		}
	}

	if mode == validate.Create || d.Carrier != nil {
		if d.Carrier == nil || strings.TrimSpace(*d.Carrier) == "" {
			errs = append(errs, "Carrier is required")
		}
	}

	if mode == validate.Create || d.ShippingAddress != nil {
		var street, city string
		if d.ShippingAddress != nil {
			street = d.ShippingAddress.Street
			city = d.ShippingAddress.City
		}
		if strings.TrimSpace(street) == "" {
			errs = append(errs, "Street is required")
		}
		if strings.TrimSpace(city) == "" {
			errs = append(errs, "City is required")
		}
	}

	return errs
}
