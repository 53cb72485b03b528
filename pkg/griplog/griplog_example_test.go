// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package griplog

import (
	"log/slog"
	"os"

	"github.com/z5labs/grip"
)

func ExampleLog() {
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	g := Log[int](grip.InMemory(1), "counter", LogHandler(h))
	g.Set(grip.Sync(2))
	// Output: level=DEBUG msg="grip operation succeeded" grip=counter op=set async=false value=2
}
