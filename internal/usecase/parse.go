package usecase

import (
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"
)

// replyDelimiter separates the display text from the id payload in the
// raw model output. The model is instructed to emit ` ||| `; splitting
// on the bare token and trimming both segments tolerates whitespace
// drift around it.
const replyDelimiter = "|||"

// parseReply splits the raw completion text into the display text and
// the recommended item ids. Everything before the first delimiter is
// display text; the segment after it, when present, is parsed as a JSON
// array of integers. A malformed payload degrades to no recommendations
// and is logged, never surfaced: the user still gets their answer.
func parseReply(raw string, logger *slog.Logger) (string, []int) {
	parts := strings.SplitN(raw, replyDelimiter, 2)
	displayText := strings.TrimSpace(parts[0])

	if len(parts) < 2 {
		return displayText, nil
	}

	var ids []int
	if err := sonic.Unmarshal([]byte(strings.TrimSpace(parts[1])), &ids); err != nil {
		logger.Warn("failed to parse item ids from model reply", "error", err)
		return displayText, nil
	}

	return displayText, ids
}

// dedupeIDs drops repeated ids, keeping the first occurrence so the
// model's emission order survives.
func dedupeIDs(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}

	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
