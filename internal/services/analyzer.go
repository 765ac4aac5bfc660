package services

import (
	"context"
	"log"

	"github.com/Kanishak333/PBL--HireEdge/internal/models"
)

// AnalyzerService runs one document through the full pipeline:
// extract → prompt → invoke → validate. Stages are strictly sequential and
// the first failure short-circuits the rest, tagged with its stage. The
// returned string is the backup key the raw document was enqueued under
// ("" when backup is disabled); the backup write itself is fire-and-forget
// and never influences the analysis outcome.
type AnalyzerService interface {
	Analyze(ctx context.Context, doc models.UploadedDocument) (models.AnalysisResult, string, error)
}

type analyzerService struct {
	extractor TextExtractor
	prompts   *PromptBuilder
	invoker   ModelInvoker
	parser    *ResponseParser
	backups   *BackupDispatcher
}

func NewAnalyzerService(
	extractor TextExtractor,
	prompts *PromptBuilder,
	invoker ModelInvoker,
	parser *ResponseParser,
	backups *BackupDispatcher,
) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		prompts:   prompts,
		invoker:   invoker,
		parser:    parser,
		backups:   backups,
	}
}

func (a *analyzerService) Analyze(ctx context.Context, doc models.UploadedDocument) (models.AnalysisResult, string, error) {
	var backupKey string
	if a.backups != nil {
		backupKey = a.backups.Enqueue(doc)
	}

	log.Printf("📄 Extracting text from %q (%d bytes)\n", doc.Filename, len(doc.Data))
	text, err := a.extractor.ExtractText(doc)
	if err != nil {
		return nil, backupKey, &PipelineError{Stage: StageExtracting, Err: err}
	}

	prompt := a.prompts.BuildAnalysisPrompt(text)
	log.Printf("📝 Prompt built: %d characters\n", len(prompt))

	raw, err := a.invoker.Invoke(ctx, prompt)
	if err != nil {
		return nil, backupKey, &PipelineError{Stage: StageInvoking, Err: err}
	}
	log.Printf("✅ Model response received: %d characters\n", len(raw))

	result, err := a.parser.Parse(raw)
	if err != nil {
		return nil, backupKey, &PipelineError{Stage: StageValidating, Err: err}
	}

	log.Printf("✅ Analysis produced %d candidate record(s)\n", len(result))
	return result, backupKey, nil
}
