package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/luga-ai/luga-cli/internal/api"
)

// Chats lists the user's conversations, newest first.
func (a *App) Chats(ctx context.Context) error {
	list, err := a.private.Conversations(ctx, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(list) == 0 {
		fmt.Println("No conversations yet, use 'ask' to start one.")
		return nil
	}
	for _, c := range list {
		fmt.Printf("%s  %s  (%s)\n", c.ConversationID, c.Title, c.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// Chat prints one conversation transcript and makes it the current one, so
// the next "ask" continues it.
func (a *App) Chat(ctx context.Context, id string) error {
	conv, err := a.private.Conversation(ctx, id, a.session.Email())
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.conversationID = conv.ConversationID
	printTranscript(conv.Title, conv.Messages)
	return nil
}

// Ask sends a prompt. With a current conversation it continues it; otherwise
// the server starts a new one, which becomes current.
func (a *App) Ask(ctx context.Context) error {
	prompt, err := GetMultiline(a.reader, "Enter your prompt:", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	res, err := a.private.Generate(ctx, api.GenerateRequest{
		Prompt:         prompt,
		UserEmail:      a.session.Email(),
		ConversationID: a.conversationID,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.conversationID = res.ConversationID
	last := res.Messages[len(res.Messages)-1]
	fmt.Println(last.Response)
	if res.Warning != "" {
		fmt.Println("!", res.Warning)
	}
	return nil
}

func printTranscript(title string, messages []api.Message) {
	fmt.Println("#", title)
	for _, m := range messages {
		fmt.Println(">", m.Prompt)
		fmt.Println(m.Response)
	}
}
