package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/journalassist/crew/chain"
	"github.com/journalassist/crew/core"
)

// runRequest is the body for POST /agent/run. Either a single agent id or an
// ordered list; with neither the pipeline defaults to the progress agent.
type runRequest struct {
	Agent  string   `json:"agent,omitempty"`
	Agents []string `json:"agents,omitempty"`
	Input  string   `json:"input"`
}

// sequence resolves the requested agent order: agents if provided, else
// [agent], else the progress default. Identifiers are trimmed, lowercased
// and blanks dropped.
func (r runRequest) sequence() []string {
	if len(r.Agents) > 0 {
		out := make([]string, 0, len(r.Agents))
		for _, id := range r.Agents {
			if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
				out = append(out, id)
			}
		}
		return out
	}
	if id := strings.ToLower(strings.TrimSpace(r.Agent)); id != "" {
		return []string{id}
	}
	return []string{"progress"}
}

// messageRecord is one transcript entry in the run response.
type messageRecord struct {
	Role    string `json:"role"`
	Agent   string `json:"agent,omitempty"`
	Content string `json:"content"`
}

// runResponse is the result of POST /agent/run. Output mirrors the last
// assistant message for single-agent callers; Messages carries the full
// transcript for the inter-agent view.
type runResponse struct {
	Agent    string          `json:"agent"`
	Output   string          `json:"output"`
	Messages []messageRecord `json:"messages"`
}

// agentInfo describes one agent in the listing response.
type agentInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type listAgentsResponse struct {
	Agents     []agentInfo `json:"agents"`
	MultiAgent string      `json:"multi_agent"`
}

// handleRunAgents handles POST /agent/run. Validation happens here, before
// any agent runs: blank input, an empty resolved sequence and identifiers
// outside the closed set are all client errors.
func (s *Server) handleRunAgents(w http.ResponseWriter, r *http.Request) {
	req, ok := readJSON[runRequest](w, r)
	if !ok {
		return
	}

	seq := req.sequence()
	if len(seq) == 0 {
		writeError(w, http.StatusBadRequest, core.ErrEmptySequence.Error())
		return
	}
	var invalid []string
	for _, id := range seq {
		if _, ok := s.registry.Resolve(id); !ok {
			invalid = append(invalid, id)
		}
	}
	if len(invalid) > 0 {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("%s: %s", core.ErrUnknownAgent, strings.Join(invalid, ", ")))
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeError(w, http.StatusBadRequest, core.ErrEmptyInput.Error())
		return
	}

	st := chain.NewState(req.Input, seq)
	s.logger.Info("run.start", "run", st.RunID, "agents", seq)

	final, err := s.orchestrator.Run(r.Context(), st)
	if err != nil {
		s.logger.Error("run.failed", "run", st.RunID, "error", err)
		var invErr *core.InvocationError
		if errors.As(err, &invErr) {
			writeError(w, http.StatusInternalServerError, invErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	records := make([]messageRecord, len(final.History))
	for i, msg := range final.History {
		records[i] = messageRecord{
			Role:    string(msg.Role),
			Agent:   msg.Agent,
			Content: msg.Content,
		}
	}

	s.logger.Info("run.done", "run", final.RunID, "last_agent", final.LastAgent, "messages", len(records))

	s.writeJSON(w, http.StatusOK, runResponse{
		Agent:    final.LastAgent,
		Output:   final.Output(),
		Messages: records,
	})
}

// handleListAgents handles GET /agents.
func (s *Server) handleListAgents(w http.ResponseWriter, _ *http.Request) {
	kinds := s.registry.Kinds()
	agents := make([]agentInfo, len(kinds))
	for i, kind := range kinds {
		agents[i] = agentInfo{ID: kind.String(), Description: kind.Description()}
	}
	s.writeJSON(w, http.StatusOK, listAgentsResponse{
		Agents:     agents,
		MultiAgent: `Use POST /agent/run with body.agents = ["summarize", "progress"] for inter-agent flow.`,
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
