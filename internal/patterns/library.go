package patterns

// Category names used by the built-in library.
const (
	StillLife  = "Still Life"
	Oscillator = "Oscillator"
	Spaceship  = "Spaceship"
	Complex    = "Complex"
)

var categoryOrder = []string{StillLife, Oscillator, Spaceship, Complex}

var library = map[string]map[string]Pattern{}

var nameOrder = map[string][]string{}

func register(category, name string, cells [][]bool) {
	if library[category] == nil {
		library[category] = make(map[string]Pattern)
	}
	library[category][name] = Pattern{category: category, name: name, cells: cells}
	nameOrder[category] = append(nameOrder[category], name)
}

func init() {
	register(StillLife, "Block", parse(
		"##",
		"##",
	))
	register(StillLife, "Beehive", parse(
		".##.",
		"#..#",
		".##.",
	))
	register(StillLife, "Loaf", parse(
		".##.",
		"#..#",
		".#.#",
		"..#.",
	))

	register(Oscillator, "Blinker", parse("###"))
	register(Oscillator, "Toad", parse(
		"..#.",
		"#..#",
		"#..#",
		".#..",
	))
	register(Oscillator, "Pulsar", pulsar())
	register(Oscillator, "Pentadecathlon", parse(
		"########",
		"#......#",
		"########",
	))

	register(Spaceship, "Glider", parse(
		".#.",
		"..#",
		"###",
	))
	register(Spaceship, "LWSS", parse(
		".####",
		"#...#",
		"....#",
		"#..#.",
	))

	register(Complex, "Glider Gun", gosperGun())
}

// parse builds a matrix from rows of '#' (alive) and '.' (dead).
func parse(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for i, row := range rows {
		m[i] = make([]bool, len(row))
		for j, c := range row {
			m[i][j] = c == '#'
		}
	}
	return m
}

func blank(rows, cols int) [][]bool {
	m := make([][]bool, rows)
	for i := range m {
		m[i] = make([]bool, cols)
	}
	return m
}

// pulsar is the 13x13 period-3 oscillator: four bars of three cells on each
// of the lines 0, 5, 7 and 12, in both orientations.
func pulsar() [][]bool {
	p := blank(13, 13)
	for _, l := range []int{0, 5, 7, 12} {
		for k := 2; k < 5; k++ {
			p[l][k], p[l][k+6] = true, true
			p[k][l], p[k+6][l] = true, true
		}
	}
	return p
}

// gosperGun is the 9x36 Gosper glider gun. Some published 35-cell tables
// leave out (7,15); it is set here to give the standard 36-cell gun.
func gosperGun() [][]bool {
	gun := blank(9, 36)
	coords := [][2]int{
		{4, 0}, {4, 1}, {5, 0}, {5, 1},
		{2, 12}, {2, 13}, {3, 11}, {4, 10}, {5, 10}, {6, 10}, {7, 11}, {7, 15}, {8, 12}, {8, 13},
		{5, 14}, {3, 15}, {4, 16}, {5, 16}, {6, 16}, {5, 17},
		{2, 20}, {2, 21}, {3, 20}, {3, 21}, {4, 20}, {4, 21}, {1, 22}, {5, 22},
		{0, 24}, {1, 24}, {5, 24}, {6, 24},
		{2, 34}, {2, 35}, {3, 34}, {3, 35},
	}
	for _, rc := range coords {
		gun[rc[0]][rc[1]] = true
	}
	return gun
}
