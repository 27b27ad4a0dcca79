// Package input reads camel-cards hands from text, one "cards bid" pair
// per line. Lines that do not match are skipped silently.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/luca-patrignani/camel-cards/domain/hand"
)

// ParseFile opens path and parses every hand in it.
func ParseFile(path string, opts ...option) ([]hand.Hand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	hands, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hands, nil
}

// Parse reads hands from r. Only a failing reader is an error.
func Parse(r io.Reader, opts ...option) ([]hand.Hand, error) {
	p := newParser(opts...)
	var hands []hand.Hand

	scanner := bufio.NewScanner(r)
	// lines are not length-capped; over-long card strings get truncated
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		h, ok := ParseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				p.logger.Debug("skipping line", "line", lineNo, "text", line)
			}
			continue
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read hands: %w", err)
	}
	p.logger.Debug("parsed hands", "count", len(hands), "lines", lineNo)
	return hands, nil
}

// ParseLine matches a single "cards bid" line. A card string longer than
// five characters is cut to its first five; anything after the bid is
// ignored.
func ParseLine(line string) (hand.Hand, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return hand.Hand{}, false
	}
	cards := fields[0]
	if len(cards) > hand.Size {
		cards = cards[:hand.Size]
	}
	bid, err := strconv.Atoi(fields[1])
	if err != nil {
		return hand.Hand{}, false
	}
	h, err := hand.NewHand(cards, bid)
	if err != nil {
		return hand.Hand{}, false
	}
	return h, true
}
