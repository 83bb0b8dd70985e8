package validators

import (
	"math"
	"regexp"
)

// Inventory form field names.
const (
	FieldClassificationName = "classification_name"
	FieldClassificationID   = "classification_id"
	FieldMake               = "inv_make"
	FieldModel              = "inv_model"
	FieldYear               = "inv_year"
	FieldPrice              = "inv_price"
	FieldMiles              = "inv_miles"
	FieldDescription        = "inv_description"
	FieldColor              = "inv_color"
	FieldImage              = "inv_image"
	FieldThumbnail          = "inv_thumbnail"
)

// Inventory form messages.
const (
	MsgClassificationName    = "Please enter a classification name."
	MsgClassificationCharset = "Classification name must not contain spaces or special characters."
	MsgClassificationID      = "Please choose a classification."
	MsgMake                  = "Vehicle make is required."
	MsgModel                 = "Vehicle model is required."
	MsgYear                  = "Enter a valid year between 1900 and 2099."
	MsgPrice                 = "Enter a valid price."
	MsgMiles                 = "Enter valid mileage."
	MsgDescription           = "Description is required."
	MsgColor                 = "Color is required."
	MsgImage                 = "Enter a valid image path (e.g., /images/vehicles/no-image.png)."
	MsgThumbnail             = "Enter a valid thumbnail path (e.g., /images/vehicles/no-image.png)."
)

const (
	MinVehicleYear = 1900
	MaxVehicleYear = 2099

	// MaxVehiclePrice is the largest value inv_price NUMERIC(12,2) holds.
	MaxVehiclePrice = 9999999999.99
)

var imagePathRe = regexp.MustCompile(`^/[a-zA-Z0-9/\-_.]+$`)

// NewClassificationValidator rejects names with spaces or special
// characters, so multi-word classifications cannot be created.
func NewClassificationValidator() FormValidator {
	return NewRuleSet("add-classification",
		NewField(FieldClassificationName).Trim().Escape().
			NotEmpty(MsgClassificationName).
			IsAlphanumeric(MsgClassificationCharset),
	)
}

func NewInventoryValidator() FormValidator {
	return NewRuleSet("add-inventory",
		NewField(FieldClassificationID).Trim().
			NotEmpty(MsgClassificationID).
			IsInt(1, math.MaxInt64, MsgClassificationID),
		NewField(FieldMake).Trim().NotEmpty(MsgMake),
		NewField(FieldModel).Trim().NotEmpty(MsgModel),
		NewField(FieldYear).Trim().IsInt(MinVehicleYear, MaxVehicleYear, MsgYear),
		NewField(FieldPrice).Trim().IsFloat(0, MaxVehiclePrice, MsgPrice),
		NewField(FieldMiles).Trim().IsInt(0, math.MaxInt32, MsgMiles),
		NewField(FieldDescription).Trim().NotEmpty(MsgDescription),
		NewField(FieldColor).Trim().NotEmpty(MsgColor),
		NewField(FieldImage).Trim().NotEmpty(MsgImage).Matches(imagePathRe, MsgImage),
		NewField(FieldThumbnail).Trim().NotEmpty(MsgThumbnail).Matches(imagePathRe, MsgThumbnail),
	)
}
