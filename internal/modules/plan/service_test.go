package plan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcast/internal/ai"
	"tripcast/internal/modules/weather"
	"tripcast/internal/types"
)

type stubLLM struct {
	reply string
	err   error
	got   ai.CompletionRequest
}

func (s *stubLLM) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	s.got = req
	return s.reply, s.err
}

func (s *stubLLM) Close() {}

var (
	rainy = weather.Record{Temperature: 12.5, Description: "moderate rain", Condition: "Rain", Humidity: 88, WindSpeed: 6.1}
	day   = types.Date{Year: 2026, Month: time.December, Day: 1}
)

func newTestGenerator(llm ai.LLMProvider) *Generator {
	return NewGenerator(llm, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGenerateExtractsEmbeddedPlan(t *testing.T) {
	llm := &stubLLM{reply: "Here is the plan:\n" + samplePlan + "\nHave fun."}

	got, err := newTestGenerator(llm).Generate(context.Background(), "Paris", day, rainy)

	require.NoError(t, err)
	assert.Equal(t, "€110-175", got[KeyTotalEstimatedCost])
	assert.NotContains(t, got, KeyAIResponse)

	assert.InDelta(t, 0.7, llm.got.Temperature, 1e-6)
	assert.Equal(t, 2000, llm.got.MaxTokens)
	assert.Contains(t, llm.got.Prompt, "Paris on 2026-12-01")
	assert.Contains(t, llm.got.Prompt, "Weather: moderate rain")
	assert.Contains(t, llm.got.Prompt, `"total_estimated_cost"`)
}

func TestGenerateNoJSONUsesDefaultWithoutRawText(t *testing.T) {
	llm := &stubLLM{reply: "Sorry, I can only answer in prose today."}

	got, err := newTestGenerator(llm).Generate(context.Background(), "Paris", day, rainy)

	require.NoError(t, err)
	assert.Equal(t, DefaultRecord(rainy), got)
	assert.NotContains(t, got, KeyAIResponse)
	assert.Equal(t, "Weather-aware recommendations based on moderate rain", got[KeyWeatherNotes])
}

func TestGenerateSingleBraceUsesDefaultWithoutRawText(t *testing.T) {
	for _, reply := range []string{"Sorry, use {curly only", "closing only }", ""} {
		got, err := newTestGenerator(&stubLLM{reply: reply}).Generate(context.Background(), "Paris", day, rainy)

		require.NoError(t, err, reply)
		assert.Equal(t, DefaultRecord(rainy), got, reply)
		assert.NotContains(t, got, KeyAIResponse, reply)
	}
}

func TestGenerateMalformedJSONKeepsRawText(t *testing.T) {
	reply := `Plan: {"morning": {"activities": ["museum"], } oops`
	llm := &stubLLM{reply: reply}

	got, err := newTestGenerator(llm).Generate(context.Background(), "Paris", day, rainy)

	require.NoError(t, err)
	assert.Equal(t, reply, got[KeyAIResponse])
	delete(got, KeyAIResponse)
	assert.Equal(t, DefaultRecord(rainy), got)
}

func TestGenerateCallFailure(t *testing.T) {
	llm := &stubLLM{err: errors.New("401 invalid api key")}

	got, err := newTestGenerator(llm).Generate(context.Background(), "Paris", day, rainy)

	assert.Nil(t, got)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestWeatherSummary(t *testing.T) {
	assert.Equal(t,
		"Temperature: 12.5°C, Weather: moderate rain, Humidity: 88%, Wind Speed: 6.1 m/s",
		WeatherSummary(rainy))
}
