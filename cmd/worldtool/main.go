package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"blockworld.dev/internal/config"
	"blockworld.dev/internal/persistence/archive"
	"blockworld.dev/internal/persistence/indexdb"
	"blockworld.dev/internal/report"
	"blockworld.dev/internal/worldmap"
)

func main() {
	// .env is optional; explicit environment still wins via config.FromEnv.
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "[worldtool] ", log.LstdFlags|log.Lmicroseconds)

	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "verify":
			verifyCmd(logger, os.Args[2:])
			return
		case "inspect":
			inspectCmd(logger, os.Args[2:])
			return
		case "archive":
			archiveCmd(logger, os.Args[2:])
			return
		case "index":
			indexCmd(logger, os.Args[2:])
			return
		case "list":
			listCmd(logger, os.Args[2:])
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: worldtool <verify|inspect|archive|index|list> [flags]")
	os.Exit(2)
}

func loadConfig(logger *log.Logger) config.Config {
	path := os.Getenv("BW_CONFIG")
	if path == "" {
		path = "blockworld.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}
	return config.FromEnv(cfg)
}

func verifyCmd(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	mapPath := fs.String("map", "", "map file to verify")
	_ = fs.Parse(args)

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "missing -map")
		os.Exit(2)
	}

	m, err := worldmap.Load(*mapPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "verify:", err)
		os.Exit(1)
	}
	logger.Printf("verify ok: %s builder=%q tiles=%d start=%v",
		*mapPath, m.Builder().Name(), len(m.Tiles()), m.StartPosition())
}

func inspectCmd(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	mapPath := fs.String("map", "", "map file to inspect")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
	_ = fs.Parse(args)

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "missing -map")
		os.Exit(2)
	}

	m, err := worldmap.Load(*mapPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "inspect:", err)
		os.Exit(1)
	}
	rep := report.Build(m)

	if *asJSON {
		b, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "inspect:", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	fmt.Printf("builder %q holding %d block(s)\n", rep.Builder.Name, len(rep.Builder.Inventory))
	fmt.Printf("start (%d, %d), %d tile(s)\n", rep.Start.X, rep.Start.Y, rep.TileCount)
	for _, tl := range rep.Tiles {
		fmt.Printf("tile %d at (%d, %d): [%s]", tl.ID, tl.X, tl.Y, strings.Join(tl.Blocks, ","))
		if len(tl.Exits) > 0 {
			fmt.Printf(" exits")
			for _, d := range []string{"north", "east", "south", "west"} {
				if id, ok := tl.Exits[d]; ok {
					fmt.Printf(" %s:%d", d, id)
				}
			}
		}
		fmt.Println()
	}
}

func archiveCmd(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("archive", flag.ExitOnError)
	mapPath := fs.String("map", "", "map file to archive")
	dir := fs.String("dir", "", "archive directory (default: config archive_dir)")
	_ = fs.Parse(args)

	if *mapPath == "" {
		fmt.Fprintln(os.Stderr, "missing -map")
		os.Exit(2)
	}
	if *dir == "" {
		*dir = loadConfig(logger).ArchiveDir
	}

	doc, err := os.ReadFile(*mapPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "archive:", err)
		os.Exit(1)
	}
	// Only verified maps get archived.
	m, err := worldmap.Read(bytes.NewReader(doc))
	if err != nil {
		fmt.Fprintln(os.Stderr, "archive:", err)
		os.Exit(1)
	}

	name := strings.TrimSuffix(filepath.Base(*mapPath), filepath.Ext(*mapPath))
	dst, err := archive.Write(*dir, archive.Meta{
		Name:   name,
		Source: *mapPath,
		Tiles:  len(m.Tiles()),
	}, doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "archive:", err)
		os.Exit(1)
	}
	logger.Printf("archived %s -> %s (%d tiles)", *mapPath, dst, len(m.Tiles()))
}

func indexCmd(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	mapsDir := fs.String("maps", "", "directory of .map files to index")
	dbPath := fs.String("db", "", "index database path (default: config index_db)")
	_ = fs.Parse(args)

	if *mapsDir == "" {
		fmt.Fprintln(os.Stderr, "missing -maps")
		os.Exit(2)
	}
	if *dbPath == "" {
		*dbPath = loadConfig(logger).IndexDB
	}

	matches, err := filepath.Glob(filepath.Join(*mapsDir, "*.map"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "index:", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		logger.Printf("no .map files under %s", *mapsDir)
		return
	}

	idx, err := indexdb.OpenSQLite(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "index:", err)
		os.Exit(1)
	}

	indexed, err := indexMaps(logger, idx, matches)
	// Close before exiting so the write-ahead log is checkpointed.
	if cerr := idx.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "index:", err)
		os.Exit(1)
	}
	logger.Printf("indexed %d/%d map(s) into %s", indexed, len(matches), *dbPath)
}

// indexMaps records every readable, valid map under its path. Unreadable or
// invalid files are skipped with a log line; a record failure stops the run.
func indexMaps(logger *log.Logger, idx *indexdb.Index, paths []string) (int, error) {
	indexed := 0
	for _, path := range paths {
		doc, err := os.ReadFile(path)
		if err != nil {
			logger.Printf("skip %s: %v", path, err)
			continue
		}
		m, err := worldmap.Read(bytes.NewReader(doc))
		if err != nil {
			logger.Printf("skip %s: %v", path, err)
			continue
		}
		sum := sha256.Sum256(doc)
		rec := indexdb.MapRecord{
			Path:    path,
			Digest:  hex.EncodeToString(sum[:]),
			Builder: m.Builder().Name(),
			Tiles:   len(m.Tiles()),
			StartX:  m.StartPosition().X,
			StartY:  m.StartPosition().Y,
		}
		if err := idx.RecordMap(rec); err != nil {
			return indexed, err
		}
		indexed++
	}
	return indexed, nil
}

func listCmd(logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", "", "index database path (default: config index_db)")
	_ = fs.Parse(args)

	if *dbPath == "" {
		*dbPath = loadConfig(logger).IndexDB
	}

	idx, err := indexdb.OpenSQLite(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(1)
	}

	recs, err := idx.Maps()
	if cerr := idx.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		os.Exit(1)
	}
	for _, r := range recs {
		digest := r.Digest
		if len(digest) > 12 {
			digest = digest[:12]
		}
		fmt.Printf("%s builder=%q tiles=%d start=(%d, %d) sha256=%s\n",
			r.Path, r.Builder, r.Tiles, r.StartX, r.StartY, digest)
	}
	logger.Printf("%d map(s) indexed", len(recs))
}
