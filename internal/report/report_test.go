package report_test

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"blockworld.dev/internal/report"
	"blockworld.dev/internal/worldmap"
)

const sampleDoc = `5
-3
Avery
wood

total:3
0 grass,soil
1 soil
2 wood,wood

exits
0 north:1,east:2
1 south:0
2
`

func buildSample(t *testing.T) report.Report {
	t.Helper()
	m, err := worldmap.Read(strings.NewReader(sampleDoc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	return report.Build(m)
}

func TestBuild(t *testing.T) {
	rep := buildSample(t)

	if rep.Builder.Name != "Avery" {
		t.Fatalf("builder name = %q", rep.Builder.Name)
	}
	if !reflect.DeepEqual(rep.Builder.Inventory, []string{"wood"}) {
		t.Fatalf("inventory = %v", rep.Builder.Inventory)
	}
	if rep.Start != (report.Coord{X: 5, Y: -3}) {
		t.Fatalf("start = %+v", rep.Start)
	}
	if rep.TileCount != 3 || len(rep.Tiles) != 3 {
		t.Fatalf("tile count = %d, tiles = %d", rep.TileCount, len(rep.Tiles))
	}

	want := []report.TileInfo{
		{ID: 0, X: 5, Y: -3, Blocks: []string{"grass", "soil"}, Exits: map[string]int{"north": 1, "east": 2}},
		{ID: 1, X: 5, Y: -2, Blocks: []string{"soil"}, Exits: map[string]int{"south": 0}},
		{ID: 2, X: 6, Y: -3, Blocks: []string{"wood", "wood"}},
	}
	if !reflect.DeepEqual(rep.Tiles, want) {
		t.Fatalf("tiles = %+v, want %+v", rep.Tiles, want)
	}
}

func TestBuildEmptyInventoryMarshalsAsArray(t *testing.T) {
	doc := "0\n0\nB\n\n\ntotal:1\n0 grass\n\nexits\n0\n"
	m, err := worldmap.Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	b, err := json.Marshal(report.Build(m))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(b), `"inventory":[]`) {
		t.Fatalf("empty inventory not an array: %s", b)
	}
}

func TestReportMatchesSchema(t *testing.T) {
	schema, err := jsonschema.Compile(filepath.Join("..", "..", "schemas", "map-report.schema.json"))
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}

	b, err := json.Marshal(buildSample(t))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := schema.Validate(v); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
