package location

// DefaultConfig returns the built-in campus directory. Order matters: alias
// containment returns the first matching entry.
func DefaultConfig() []Config {
	return []Config{
		{
			Key:         "library",
			DisplayName: "Frank Melville Jr. Memorial Library",
			Lat:         coord(40.9144),
			Lng:         coord(-73.1251),
			Aliases:     []string{"melville library", "main library"},
		},
		{
			Key:         "student-activities-center",
			DisplayName: "Student Activities Center",
			Lat:         coord(40.9145),
			Lng:         coord(-73.1242),
			Aliases:     []string{"sac", "student activities center", "student union"},
		},
		{
			Key:         "computer-science",
			DisplayName: "New Computer Science Building",
			Lat:         coord(40.9126),
			Lng:         coord(-73.1223),
			Aliases:     []string{"cs building", "computer science", "new cs"},
		},
		{
			Key:         "javits",
			DisplayName: "Javits Lecture Center",
			Lat:         coord(40.9133),
			Lng:         coord(-73.1222),
			Aliases:     []string{"javits lecture center", "javits center", "lecture center"},
		},
		{
			Key:         "engineering",
			DisplayName: "Heavy Engineering",
			Lat:         coord(40.9130),
			Lng:         coord(-73.1259),
			Aliases:     []string{"heavy engineering", "engineering building", "light engineering"},
		},
		{
			Key:         "staller",
			DisplayName: "Staller Center for the Arts",
			Lat:         coord(40.9159),
			Lng:         coord(-73.1216),
			Aliases:     []string{"staller center", "arts center"},
		},
		{
			Key:         "wang-center",
			DisplayName: "Charles B. Wang Center",
			Lat:         coord(40.9159),
			Lng:         coord(-73.1195),
			Aliases:     []string{"wang center", "charles b. wang center"},
		},
		{
			Key:         "stadium",
			DisplayName: "Kenneth P. LaValle Stadium",
			Lat:         coord(40.9183),
			Lng:         coord(-73.1254),
			Aliases:     []string{"lavalle stadium", "lavalle", "football stadium"},
		},
		{
			Key:         "arena",
			DisplayName: "Island Federal Arena",
			Lat:         coord(40.9175),
			Lng:         coord(-73.1237),
			Aliases:     []string{"island federal arena", "sports complex", "basketball arena"},
		},
		{
			Key:         "roth-quad",
			DisplayName: "Roth Quad",
			Lat:         coord(40.9107),
			Lng:         coord(-73.1247),
			Aliases:     []string{"roth quad", "roth pond"},
		},
		{
			Key:         "hospital",
			DisplayName: "Stony Brook University Hospital",
			Lat:         coord(40.9087),
			Lng:         coord(-73.1166),
			Aliases:     []string{"university hospital", "health sciences center", "hsc"},
		},
		{
			Key:         "train-station",
			DisplayName: "LIRR Stony Brook Station",
			Lat:         coord(40.9206),
			Lng:         coord(-73.1283),
			Aliases:     []string{"lirr", "train station", "railroad station"},
		},
	}
}
