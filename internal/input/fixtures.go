package input

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Sample point sets, available by file name sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) ([]advanced.Point, error) {
	fixture, err := fixtures.Open(path.Join("fixtures", name+".svg"))
	if err != nil {
		return nil, errors.Wrapf(err, "load fixture %q", name)
	}
	defer fixture.Close()

	points, err := ReadSVGPoints(fixture)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fixture %q", name)
	}
	return points, nil
}

func FixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		// The directory is embedded, so this can't happen
		panic(err)
	}
	var names []string
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	sort.Strings(names)
	return names
}
