package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	m := make([][]bool, len(lines))
	for i, line := range lines {
		m[i] = make([]bool, len(line))
		for j, c := range line {
			m[i][j] = c == '#'
		}
	}
	g, err := FromBools(m)
	require.NoError(t, err)
	return g
}

func TestRule(t *testing.T) {
	tests := []struct {
		alive bool
		n     int
		want  bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rule(tt.alive, tt.n), "Rule(%v, %d)", tt.alive, tt.n)
	}
}

func TestStep_BlockIsFixedPoint(t *testing.T) {
	block := mustParse(t,
		"......",
		"..##..",
		"..##..",
		"......",
	)
	next, err := Step(block)
	require.NoError(t, err)
	assert.True(t, next.Equal(block), "block changed:\n%s", next)
}

func TestStep_BlinkerPeriodTwo(t *testing.T) {
	blinker := mustParse(t,
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	vertical := mustParse(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	once, err := Step(blinker)
	require.NoError(t, err)
	assert.False(t, once.Equal(blinker))
	assert.True(t, once.Equal(vertical), "unexpected phase after one step:\n%s", once)

	twice, err := Step(once)
	require.NoError(t, err)
	assert.True(t, twice.Equal(blinker), "blinker should return after two steps:\n%s", twice)
}

func TestStep_GliderWrapsAround(t *testing.T) {
	g := MustNew(8, 8)
	g.Stamp([][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}, 5, 5)

	cur := g
	for i := 0; i < 32; i++ {
		next, err := Step(cur)
		require.NoError(t, err, "step %d", i)
		cur = next
		require.Equal(t, 5, cur.Population(), "glider population at step %d", i+1)
	}
	// a glider moves one cell diagonally every 4 generations; 32 steps on an
	// 8x8 torus brings it home
	assert.True(t, cur.Equal(g), "glider did not return after 32 steps:\n%s", cur)
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	g, _ := Random(12, 12, 7, 0.5)
	before := g.Clone()
	_, err := Step(g)
	require.NoError(t, err)
	assert.True(t, g.Equal(before), "Step mutated its input")
}

func TestStep_Total(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {5, 9}, {31, 17}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 3; seed++ {
			g, _ := Random(sz[0], sz[1], seed, 0.5)
			next, err := Step(g)
			require.NoError(t, err, "%dx%d", sz[0], sz[1])
			assert.Equal(t, sz[0], next.Rows())
			assert.Equal(t, sz[1], next.Cols())
		}
	}
}

func TestStep_SingleCellTorus(t *testing.T) {
	g := MustNew(1, 1)
	g.Set(0, 0, true)
	next, err := Step(g)
	require.NoError(t, err)
	// the lone cell sees itself eight times and dies of overcrowding
	assert.False(t, next.Alive(0, 0))
}

func TestStep_InvalidGrid(t *testing.T) {
	tests := []struct {
		name string
		g    *Grid
	}{
		{"nil", nil},
		{"zero value", &Grid{}},
		{"inconsistent storage", &Grid{rows: 2, cols: 2, cells: make([]bool, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Step(tt.g)
			assert.ErrorIs(t, err, ErrInvalidDimension)
		})
	}
}

func BenchmarkStep(b *testing.B) {
	g, _ := Random(256, 256, 1, 0.3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ = Step(g)
	}
}
