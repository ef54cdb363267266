package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/freeflow/internal/dashboard"
	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/llm"
)

// Advice sources.
const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// Advice is a short list of recommendations about the current workload.
type Advice struct {
	Points []string `json:"advice"`
	Source string   `json:"-"`
}

// Text joins the points as a numbered list.
func (a *Advice) Text() string {
	var b strings.Builder
	for i, p := range a.Points {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, p)
	}
	return b.String()
}

// AdvisorService produces workload advice.
type AdvisorService interface {
	// WorkloadAdvice never fails because of the model; any LLM error yields
	// the deterministic advice instead.
	WorkloadAdvice(ctx context.Context, projects []domain.Project) (*Advice, error)
}

type advisorService struct {
	client   llm.LLMClient
	observer llm.Observer
	language string
}

// NewAdvisorService creates an AdvisorService. client may be nil, in which
// case only deterministic advice is produced. language, when set, is the
// language the model is asked to answer in.
func NewAdvisorService(client llm.LLMClient, observer llm.Observer, language string) AdvisorService {
	return &advisorService{client: client, observer: observer, language: language}
}

func (s *advisorService) WorkloadAdvice(ctx context.Context, projects []domain.Project) (*Advice, error) {
	if s.client == nil {
		return DeterministicAdvice(projects), nil
	}

	summary, err := json.Marshal(dashboard.WorkloadSummary(projects))
	if err != nil {
		return DeterministicAdvice(projects), nil
	}

	system := adviceSystemPrompt
	if s.language != "" {
		system += fmt.Sprintf(adviceLanguageNote, s.language)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdvice,
		SystemPrompt: system,
		UserPrompt:   "Current projects: " + string(summary),
	})
	if err != nil {
		return DeterministicAdvice(projects), nil
	}

	advice, err := llm.ExtractJSON[Advice](resp.Text, validateAdvice)
	if err != nil {
		return DeterministicAdvice(projects), nil
	}
	advice.Source = SourceLLM
	return &advice, nil
}

func validateAdvice(a Advice) error {
	if len(a.Points) == 0 {
		return fmt.Errorf("advice list is empty")
	}
	for i, p := range a.Points {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("advice %d is blank", i)
		}
	}
	return nil
}
