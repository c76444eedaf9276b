package main

// Finds paths to types and fields of the Star Wars schema.  Run it with the names to search
// for (default "Starship,length"), eg:
//
//	go run ./example/starwars Review
//	go run ./example/starwars -relay PageInfo

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/andrewwphillips/gqlpath"
)

//go:embed starwars.graphql
var schema string

func main() {
	relay := flag.Bool("relay", false, "show relay types")
	flag.Parse()

	query := "Starship,length"
	if flag.NArg() > 0 {
		query = strings.Join(flag.Args(), ",")
	}

	s, err := gqlpath.ParseSDL(schema)
	if err != nil {
		log.Fatalln(err)
	}
	results, err := s.Search(query, gqlpath.ShowRelay(*relay))
	if err != nil {
		log.Fatalln(err)
	}
	if len(results) == 0 {
		fmt.Println("no paths to", query)
		return
	}
	if err := s.Render(os.Stdout, results, gqlpath.ShowRelay(*relay)); err != nil {
		log.Fatalln(err)
	}

	// Path works between any 2 object types
	fmt.Println("EpisodeDetails to Starship:", s.Path("EpisodeDetails", "Starship"))
}
