// Package chatcmder provides the chat command for interactive conversations
// against a node through the fractal API server.
package chatcmder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fractalhq/fractal/pkg/cliui"
	"github.com/fractalhq/fractal/pkg/config"
	"github.com/fractalhq/fractal/pkg/dotdir"
	"github.com/fractalhq/fractal/pkg/logger"
	"github.com/fractalhq/fractal/pkg/utils"
)

var (
	userPrompt      = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true).Render("you> ")
	assistantPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("assistant> ")
)

type chatCommander struct {
	apiTarget string
	nodeTitle string
	configDir string
	debug     bool

	logger *zap.Logger
	client *http.Client
}

// chatTurnResponse mirrors the API's chat result shape.
type chatTurnResponse struct {
	AssistantMessage struct {
		Content string `json:"content"`
	} `json:"assistant_message"`
	ServedBy     string `json:"served_by"`
	FallbackFrom string `json:"fallback_from"`
}

// nodeResponse mirrors the API's node shape for the fields the CLI needs.
type nodeResponse struct {
	ID    string `json:"node_id"`
	Title string `json:"title"`
}

const chatLongDesc string = `Start an interactive chat session against a node.

The chat command opens a node on the fractal API server and sends each
message as a turn. If a session exists (from a previous chat), the
conversation resumes on the same node; otherwise a new root node is created.

Session commands:
  /branch <title>   Create a child node and switch to it
  /summarize        Summarize the current node
  /exit             Leave the session (also Ctrl+D)

Examples:
  fractal chat
  fractal chat --title "auth redesign"
  fractal chat --api-target http://localhost:8080`

const chatShortDesc string = "Interactive chat against a fractal node"

func NewChatCmd() *cobra.Command {
	cmder := &chatCommander{}

	cmd := &cobra.Command{
		Use:   "chat",
		Short: chatShortDesc,
		Long:  chatLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			cfger, err := config.NewConfiger(cmder.configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			cfg, err := cfger.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("api-target") {
				cmder.apiTarget = cfg.Client.APITarget
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			return cmder.run()
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().StringVarP(&cmder.apiTarget, "api-target", "a", defaults.Client.APITarget, "Fractal API server URL")
	cmd.Flags().StringVarP(&cmder.nodeTitle, "title", "t", "", "Title for a new root node (ignored when resuming)")

	return cmd
}

func (c *chatCommander) run() error {
	c.logger = logger.NewLogger(c.debug)
	defer func() { _ = c.logger.Sync() }()

	c.client = &http.Client{
		// Generation can be slow.
		Timeout: 5 * time.Minute,
	}

	ddm := dotdir.NewManager()
	session, err := ddm.LoadSessionState(c.configDir)
	if err != nil {
		return fmt.Errorf("loading session state: %w", err)
	}

	fmt.Println()
	if session != nil {
		fmt.Printf("  %s Resuming %s %s\n",
			cliui.SuccessMark,
			cliui.NameStyle.Render(session.NodeTitle),
			cliui.DimStyle.Render("("+utils.Truncate(session.NodeID, 8)+")"),
		)
	} else {
		title := c.nodeTitle
		if title == "" {
			title = "Chat " + time.Now().Format("2006-01-02 15:04")
		}

		n, err := c.createNode(title, "")
		if err != nil {
			return fmt.Errorf("creating node: %w", err)
		}
		session = &dotdir.SessionState{NodeID: n.ID, NodeTitle: n.Title}
		if err := ddm.SaveSession(session, c.configDir); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}

		fmt.Printf("  %s New node %s\n", cliui.SuccessMark, cliui.NameStyle.Render(n.Title))
	}

	fmt.Printf("  %s\n\n", cliui.DimStyle.Render("Type your message and press Enter. /exit or Ctrl+D to quit."))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		fmt.Print(userPrompt)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			break
		}

		if cmd, arg, ok := parseSlashCommand(input); ok {
			session, err = c.handleCommand(cmd, arg, session, ddm)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  %s %v\n\n", cliui.FailMark, err)
			}
			continue
		}

		turn, err := c.sendTurn(session.NodeID, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n\n", cliui.FailMark, err)
			continue
		}

		fmt.Print(assistantPrompt)
		fmt.Println(turn.AssistantMessage.Content)
		if turn.FallbackFrom != "" {
			fmt.Printf("  %s\n", cliui.DimStyle.Render(
				fmt.Sprintf("(served by %s, fell back from %s)", turn.ServedBy, turn.FallbackFrom)))
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	return nil
}

// parseSlashCommand splits "/branch some title" into ("branch", "some title").
func parseSlashCommand(input string) (cmd, arg string, ok bool) {
	if !strings.HasPrefix(input, "/") {
		return "", "", false
	}
	parts := strings.SplitN(strings.TrimPrefix(input, "/"), " ", 2)
	cmd = parts[0]
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg, true
}

func (c *chatCommander) handleCommand(cmd, arg string, session *dotdir.SessionState, ddm *dotdir.Manager) (*dotdir.SessionState, error) {
	switch cmd {
	case "branch":
		if arg == "" {
			return session, fmt.Errorf("usage: /branch <title>")
		}
		n, err := c.createNode(arg, session.NodeID)
		if err != nil {
			return session, err
		}

		next := &dotdir.SessionState{NodeID: n.ID, NodeTitle: n.Title, ProjectID: session.ProjectID}
		if err := ddm.SaveSession(next, c.configDir); err != nil {
			return session, fmt.Errorf("saving session: %w", err)
		}

		fmt.Printf("  %s Branched to %s\n\n", cliui.SuccessMark, cliui.NameStyle.Render(n.Title))
		return next, nil

	case "summarize":
		err := cliui.Step(os.Stdout, "Summarizing", func() error {
			return c.postJSON(fmt.Sprintf("/api/v1/nodes/%s/summarize", session.NodeID), nil, nil)
		})
		fmt.Println()
		return session, err

	default:
		return session, fmt.Errorf("unknown command %q", "/"+cmd)
	}
}

func (c *chatCommander) createNode(title, parentID string) (*nodeResponse, error) {
	body := map[string]any{"title": title}
	if parentID != "" {
		body["parent_id"] = parentID
	}

	var n nodeResponse
	if err := c.postJSON("/api/v1/nodes", body, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (c *chatCommander) sendTurn(nodeID, content string) (*chatTurnResponse, error) {
	var turn chatTurnResponse
	err := c.postJSON(fmt.Sprintf("/api/v1/nodes/%s/messages", nodeID), map[string]any{
		"content": content,
	}, &turn)
	if err != nil {
		return nil, err
	}
	return &turn, nil
}

// postJSON posts body to the API and decodes the response into out when
// non-nil. Non-2xx responses are returned as errors carrying the API's
// error message.
func (c *chatCommander) postJSON(path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.apiTarget + path
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending API request", zap.String("url", url))

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("API returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
