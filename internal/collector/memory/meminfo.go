package memory

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type memInfo struct {
	memTotal     uint64
	memAvailable uint64
	swapTotal    uint64
	swapFree     uint64
}

func readMemInfo(path string) (memInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return memInfo{}, err
	}
	defer f.Close()

	var info memInfo

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		valueKB, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch strings.TrimSuffix(fields[0], ":") {
		case "MemTotal":
			info.memTotal = valueKB * 1024
		case "MemAvailable":
			info.memAvailable = valueKB * 1024
		case "SwapTotal":
			info.swapTotal = valueKB * 1024
		case "SwapFree":
			info.swapFree = valueKB * 1024
		}
	}

	return info, scanner.Err()
}
