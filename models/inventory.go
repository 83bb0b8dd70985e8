package models

// Classification groups vehicles and feeds the site navigation.
type Classification struct {
	ClassificationID int64  `json:"classification_id"`
	Name             string `json:"classification_name"`
}

// TableName returns the name of the database table
// associated with the Classification model.
func (c Classification) TableName() string {
	return "classification"
}

// Vehicle is a single inventory item.
type Vehicle struct {
	InvID            int64 `json:"inv_id"`
	ClassificationID int64 `json:"classification_id"`

	// ClassificationName is filled on reads joined with the classification table.
	ClassificationName string `json:"classification_name,omitempty"`

	Make        string  `json:"inv_make"`
	Model       string  `json:"inv_model"`
	Year        int     `json:"inv_year"`
	Description string  `json:"inv_description"`
	Image       string  `json:"inv_image"`
	Thumbnail   string  `json:"inv_thumbnail"`
	Price       float64 `json:"inv_price"`
	Miles       int     `json:"inv_miles"`
	Color       string  `json:"inv_color"`
}

// Name returns "<make> <model>", used for page titles and notices.
func (v Vehicle) Name() string {
	return v.Make + " " + v.Model
}

// TableName returns the name of the database table
// associated with the Vehicle model.
func (v Vehicle) TableName() string {
	return "inventory"
}
