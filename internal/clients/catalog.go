package clients

// Schools is the catalog offered to clients in the target-school picker.
// Selections are not validated against it server-side; any string the UI
// sends is stored as-is.
var Schools = []string{
	"Harvard Business School",
	"Stanford GSB",
	"Wharton",
	"MIT Sloan",
	"Kellogg",
	"Columbia Business School",
	"Booth",
	"INSEAD",
	"Yale SOM",
	"Duke Fuqua",
	"NYU Stern",
	"Berkeley Haas",
	"LBS",
	"ISB",
	"IIM Ahmedabad",
	"IIM Bangalore",
	"IIM Calcutta",
}

// Rounds is the fixed set of application round labels. Empty string is the
// valid "unset" value.
var Rounds = []string{
	"Round 1",
	"Round 2",
	"Round 3",
	"Early Decision",
	"Merit Fellowship",
}
