package models

// Doctor is read-only reference data sourced from the external directory.
// AvailableSlots distinguishes "not advertised" (nil) from "explicitly zero"
// (empty, non-nil).
type Doctor struct {
	ID             string   `json:"id" bson:"_id"`
	Name           string   `json:"name" bson:"name"`
	Speciality     string   `json:"speciality" bson:"speciality"`
	Experience     int      `json:"experience" bson:"experience"`
	Ratings        float64  `json:"ratings" bson:"ratings"`
	ProfilePic     string   `json:"profilePic,omitempty" bson:"profile_pic,omitempty"`
	Location       string   `json:"location,omitempty" bson:"location,omitempty"`
	AvailableSlots []string `json:"availableSlots,omitempty" bson:"available_slots"`
}
