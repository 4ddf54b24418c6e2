package cpu

import (
	"os"
	"strconv"
	"strings"
)

type cpuTimes struct {
	idle  uint64
	total uint64
}

type statSnapshot struct {
	order []string
	times map[string]cpuTimes
}

func readStat(path string) (statSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return statSnapshot{}, err
	}
	return parseStat(string(data)), nil
}

func parseStat(text string) statSnapshot {
	snap := statSnapshot{times: make(map[string]cpuTimes)}

	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "cpu") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		var t cpuTimes
		for i, raw := range fields[1:] {
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				continue
			}
			t.total += v
			// idle + iowait
			if i == 3 || i == 4 {
				t.idle += v
			}
		}

		snap.order = append(snap.order, fields[0])
		snap.times[fields[0]] = t
	}

	return snap
}

func usageBetween(prev, current cpuTimes) float64 {
	totalDelta := float64(current.total) - float64(prev.total)
	idleDelta := float64(current.idle) - float64(prev.idle)

	if totalDelta <= 0 {
		return 0
	}

	usage := (totalDelta - idleDelta) / totalDelta * 100
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}
