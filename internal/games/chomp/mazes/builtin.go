package mazes

// Built-in levels, played in this order by the campaign mode.
// Both are validated in tests rather than at init.

var classic = MustParse("classic", "Classic", []string{
	"###################",
	"#........#........#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.###.#.###.####",
	"    .   GGG   .    ",
	"####.###.#.###.####",
	"#....#...#...#....#",
	"#.##.#.#####.#.##.#",
	"#.................#",
	"#o##.###.#.###.##o#",
	"#........P........#",
	"###################",
})

var arena = MustParse("arena", "Arena", []string{
	"#############",
	"#o....#....o#",
	"#.##..#..##.#",
	"#.#..G.G..#.#",
	"#...#####...#",
	"#.#...P...#.#",
	"#.##.....##.#",
	"#o.........o#",
	"#############",
})

// Builtin returns the built-in mazes in campaign order.
func Builtin() []*Maze {
	return []*Maze{classic, arena}
}

// ByID returns a maze by ID, searching customs first so a user pack can
// shadow a built-in layout.
func ByID(id string, custom []*Maze) *Maze {
	for _, m := range custom {
		if m.ID == id {
			return m
		}
	}
	for _, m := range Builtin() {
		if m.ID == id {
			return m
		}
	}
	return nil
}
