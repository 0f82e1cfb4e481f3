package usecase

import (
	"strings"
	"text/template"

	"github.com/satriahrh/consultassist/domain/entities"
)

const transcriptionPrompt = `
Transcribe the following audio to text.
The audio contains a medical consultation conversation in Hindi and English.
Please provide:
1. The transcribed text
2. The primary language detected
3. Confidence score (0-1)
4. Sentiment analysis (positive, negative, neutral, confused, distressed)

Format your response as JSON:
{
    "transcript": "transcribed text here",
    "language": "hi" or "en",
    "confidence": 0.95,
    "sentiment": {
        "label": "positive/negative/neutral/confused/distressed",
        "score": 0.8
    }
}
`

// Fields are interpolated verbatim; the model sees exactly what the caller sent.
var questionGenerationTemplate = template.Must(template.New("questions").Parse(`
You are an AI assistant helping doctors during medical consultations.
Based on the patient's response and medical context, generate appropriate follow-up questions.

Patient Response: "{{.Transcript}}"
Medical Context: "{{.Context}}"
Question Type: {{.QuestionType}}
Session History: "{{.SessionHistory}}"

Generate 3-5 clinically appropriate follow-up questions that will help the doctor:
1. Gather more medical information
2. Clarify symptoms
3. Understand patient concerns
4. Assess treatment effectiveness

Also analyze the patient's emotional state and provide alerts if needed.

Respond in JSON format:
{
    "questions": [
        "Question 1",
        "Question 2",
        "Question 3"
    ],
    "suggestedQuestion": "Most relevant question to ask next",
    "emotionAlert": false,
    "emotionDetails": {
        "detected": "confused/distressed/calm/anxious",
        "confidence": 0.8,
        "recommendation": "Consider reassuring the patient"
    },
    "medicalInsights": [
        "Key medical insight 1",
        "Key medical insight 2"
    ]
}
`))

var sentimentAnalysisTemplate = template.Must(template.New("sentiment").Parse(`
Analyze the sentiment of the following medical consultation text:
"{{.Text}}"

Consider medical context and patient emotions. Respond in JSON format:
{
    "sentiment": "positive/negative/neutral/confused/distressed/anxious",
    "confidence": 0.85,
    "emotions": ["confusion", "anxiety", "relief"],
    "recommendation": "Consider reassuring the patient"
}
`))

// Top-level keys each prompt asks the model to produce
var (
	transcriptionFields      = []string{"transcript", "language", "confidence", "sentiment"}
	questionGenerationFields = []string{"questions", "suggestedQuestion", "emotionAlert", "emotionDetails", "medicalInsights"}
	sentimentAnalysisFields  = []string{"sentiment", "confidence", "emotions", "recommendation"}
)

func renderTranscriptionPrompt() string {
	return transcriptionPrompt
}

func renderQuestionGenerationPrompt(req entities.QuestionGenerationRequest) (string, error) {
	return render(questionGenerationTemplate, req)
}

func renderSentimentAnalysisPrompt(req entities.SentimentAnalysisRequest) (string, error) {
	return render(sentimentAnalysisTemplate, req)
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
