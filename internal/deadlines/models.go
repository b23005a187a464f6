package deadlines

import "time"

// Deadline is one row of the master deadline table: a single round for a
// single school. Reference data — the portal never writes it.
type Deadline struct {
	ID         string    `bson:"id" json:"id"`
	SchoolName string    `bson:"schoolName" json:"schoolName"`
	RoundName  string    `bson:"roundName" json:"roundName"`
	Date       time.Time `bson:"deadlineDate" json:"deadlineDate"`
}

// Classification buckets a deadline by how soon it falls.
type Classification string

const (
	Past   Classification = "past"
	Urgent Classification = "urgent"
	Normal Classification = "normal"
)

// Upcoming pairs a deadline with its evaluated distance from "now".
type Upcoming struct {
	Deadline
	DaysLeft       int            `json:"daysLeft"`
	Classification Classification `json:"classification"`
}
