package testdata

import (
	"bufio"
	"os"
	"strings"
)

// Route represents a single line in a pattern fixture file.
// A line holds a pattern, optionally followed by a concrete path it must match.
type Route struct {
	Pattern string
	Path    string
}

// Routes loads all routes from a text file.
// Blank lines and lines starting with '#' are skipped.
func Routes(fileName string) []Route {
	var routes []Route

	for line := range Lines(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		parts := strings.Fields(line)
		route := Route{Pattern: parts[0]}
		if len(parts) > 1 {
			route.Path = parts[1]
		}
		routes = append(routes, route)
	}

	return routes
}

// Lines is a utility function to easily read every line in a text file.
func Lines(fileName string) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)
		file, err := os.Open(fileName)

		if err != nil {
			return
		}

		defer file.Close()
		scanner := bufio.NewScanner(file)

		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	return lines
}
