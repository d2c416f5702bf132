package cli

import (
	"context"
	"strconv"
	"strings"
)

// Chat sends a message to the assistant. With pre-indexing enabled the
// unindexed files in the current listing are indexed first.
func (a *App) Chat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("chat <message>")
	}
	res, err := a.chat.Send(ctx, strings.Join(args, " "), a.explorer.State().Files)
	if res != nil && len(res.PreIndexed) > 0 {
		a.printf("Indexed %d document(s) before sending.\n", len(res.PreIndexed))
		if rerr := a.explorer.Refresh(ctx); rerr != nil {
			a.logger.Warn(ctx, "refresh after pre-index failed", "error", rerr)
		}
	}
	if err != nil {
		return err
	}

	a.println(res.Response.Message)
	if act := res.Response.ActionTaken; act != nil {
		a.printf("* %s → %s\n", act.Company, act.NewStatus)
		if rerr := a.explorer.LoadApplications(ctx); rerr != nil {
			a.logger.Warn(ctx, "reload after status change failed", "error", rerr)
		}
	}
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return usage("history [n]")
		}
		limit = n
	}
	msgs, err := a.chat.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		a.println("No chat history.")
		return nil
	}
	for _, m := range msgs {
		a.printf("[%s] %s\n", m.Role, m.Content)
	}
	return nil
}

func (a *App) ClearHistory(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Clear the whole chat history?", a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.chat.Clear(ctx); err != nil {
		return err
	}
	a.println("Chat history cleared.")
	return nil
}
