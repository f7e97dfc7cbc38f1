package adapters

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"recs-data/internal/ports"
	"recs-data/internal/types"
)

var candidateDelimiters = []rune{',', ';', '\t', '|'}

// MicrodataCSVAdapter loads the survey microdata file into a Frame. The
// first record names the columns.
type MicrodataCSVAdapter struct{}

func NewMicrodataCSVAdapter() MicrodataCSVAdapter {
	return MicrodataCSVAdapter{}
}

func (a MicrodataCSVAdapter) Load(path string) (types.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return types.Frame{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open microdata file: " + path).
			WithCause(err)
	}
	defer file.Close()
	return a.Read(file)
}

func (a MicrodataCSVAdapter) Read(input io.Reader) (types.Frame, error) {
	buffered := bufio.NewReader(input)
	header, _ := buffered.Peek(4096)
	delimiter := detectDelimiter(string(header))

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if err == io.EOF {
		return types.Frame{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("microdata file is empty")
	}
	if err != nil {
		return types.Frame{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to read microdata header").
			WithCause(err)
	}
	for i := range columns {
		columns[i] = strings.TrimSpace(strings.TrimPrefix(columns[i], "\ufeff"))
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return types.Frame{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read microdata record").
				WithCause(err)
		}
		rows = append(rows, record)
	}
	log.Debug().
		Int("columns", len(columns)).
		Int("rows", len(rows)).
		Str("delimiter", string(delimiter)).
		Msg("microdata loaded")
	return types.NewFrame(columns, rows), nil
}

// detectDelimiter picks the candidate that occurs most often in the
// header line outside quotes, defaulting to a comma.
func detectDelimiter(sample string) rune {
	line := sample
	if idx := strings.IndexAny(sample, "\r\n"); idx >= 0 {
		line = sample[:idx]
	}
	counts := map[rune]int{}
	quoted := false
	for _, r := range line {
		if r == '"' {
			quoted = !quoted
			continue
		}
		if !quoted {
			counts[r]++
		}
	}
	best := ','
	for _, candidate := range candidateDelimiters {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}

var _ ports.FrameLoaderPort = MicrodataCSVAdapter{}
