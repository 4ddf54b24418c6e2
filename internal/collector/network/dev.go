package network

import (
	"bufio"
	"strconv"
	"strings"
)

// Interfaces that would double-count or pollute host-level throughput:
// loopback, bridges, container veth pairs.
var (
	excludedNames    = []string{"lo"}
	excludedPrefixes = []string{"br-", "docker", "services", "veth"}
)

func excludedInterface(name string) bool {
	for _, x := range excludedNames {
		if name == x {
			return true
		}
	}

	for _, p := range excludedPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}

	return false
}

// parseCounters sums receive and transmit byte counters over all allowed
// interfaces in the counter file text. Data lines look like
//
//	eth0: 1234 10 0 0 0 0 0 0 5678 9 0 0 0 0 0 0
//
// with receive bytes at field 0 and transmit bytes at field 8 after the
// colon. The first two lines are headers. Malformed lines are skipped;
// non-numeric fields count as zero.
func parseCounters(text string) (rxTotal, txTotal uint64) {
	scanner := bufio.NewScanner(strings.NewReader(text))

	for i := 0; i < 2 && scanner.Scan(); i++ {
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			continue
		}

		name := strings.TrimSpace(line[:idx])
		fields := strings.Fields(line[idx+1:])
		if len(fields) < 9 {
			continue
		}

		if excludedInterface(name) {
			continue
		}

		rxTotal += parseUint(fields[0])
		txTotal += parseUint(fields[8])
	}

	return rxTotal, txTotal
}

func parseUint(s string) uint64 {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
