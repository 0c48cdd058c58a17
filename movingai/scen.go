package movingai

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadScen parses a MovingAI .scen file at path: one scenario per line,
// "bucket map_name map_w map_h sx sy gx gy [opt]", with an optional leading
// "version ..." line. Lines that fail to parse the required eight fields
// are skipped rather than treated as a hard error, matching the source
// loader's tolerance of trailing blank or malformed lines.
func LoadScen(path string) ([]ScenCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpenScen, path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), maxMapLineBytes)

	var cases []ScenCase
	first := true
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if first && strings.HasPrefix(line, "version") {
			first = false
			continue
		}
		first = false

		c, ok := parseScenLine(line)
		if !ok {
			continue
		}
		cases = append(cases, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotOpenScen, path, err)
	}
	return cases, nil
}

func parseScenLine(line string) (ScenCase, bool) {
	fields := strings.Fields(line)
	if len(fields) < 8 {
		return ScenCase{}, false
	}

	var c ScenCase
	var err error
	if c.Bucket, err = strconv.Atoi(fields[0]); err != nil {
		return ScenCase{}, false
	}
	c.MapName = fields[1]
	if c.MapW, err = strconv.Atoi(fields[2]); err != nil {
		return ScenCase{}, false
	}
	if c.MapH, err = strconv.Atoi(fields[3]); err != nil {
		return ScenCase{}, false
	}
	if c.SX, err = strconv.Atoi(fields[4]); err != nil {
		return ScenCase{}, false
	}
	if c.SY, err = strconv.Atoi(fields[5]); err != nil {
		return ScenCase{}, false
	}
	if c.GX, err = strconv.Atoi(fields[6]); err != nil {
		return ScenCase{}, false
	}
	if c.GY, err = strconv.Atoi(fields[7]); err != nil {
		return ScenCase{}, false
	}
	if len(fields) >= 9 {
		if opt, err := strconv.ParseFloat(fields[8], 64); err == nil {
			c.Opt = opt
		}
	}
	return c, true
}
