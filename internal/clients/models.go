package clients

import "time"

// StatusActive is the default engagement status for a client profile.
const StatusActive = "active"

// Profile is a client's engagement record. Target schools and application
// round are written by the client; status and notes by the consultant only.
// FullName and Email are projected from the identity record at provisioning
// time so the admin roster can search without a join.
type Profile struct {
	ID               string    `bson:"id" json:"id"`
	UserID           string    `bson:"userId" json:"userId"`
	FullName         string    `bson:"fullName" json:"fullName"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
	TargetSchools    []string  `bson:"targetSchools" json:"targetSchools"`
	ApplicationRound string    `bson:"applicationRound" json:"applicationRound"`
	Status           string    `bson:"status" json:"status"`
	Notes            string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
