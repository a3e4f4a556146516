package server

import (
	"sync"

	"lead_folder_generator/generator"
	"lead_folder_generator/history"
)

// generatingPlaceholder is the transient output shown while a request is in
// flight. It has no numbered headings, so the segmenter yields only "all".
const generatingPlaceholder = "_Generating project folder…_"

// appState is the active generation context: the lead/output pair currently
// shown plus which history entry (if any) it came from. Overlapping
// generations resolve by last write wins.
type appState struct {
	mu         sync.Mutex
	leadText   string
	outputText string
	model      generator.Model
	tone       generator.Tone
	selectedID string
}

type stateView struct {
	LeadText   string          `json:"leadText"`
	OutputText string          `json:"outputText"`
	Model      generator.Model `json:"model"`
	Tone       generator.Tone  `json:"tone"`
	SelectedID string          `json:"selectedId"`
}

// setGenerating enters the in-flight state: placeholder output, no selected
// history entry.
func (st *appState) setGenerating(req generator.Request) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.leadText = req.LeadText
	st.outputText = generatingPlaceholder
	st.model = req.Model
	st.tone = req.Tone
	st.selectedID = ""
}

// setResult installs a freshly recorded generation as the active context.
func (st *appState) setResult(item history.Item) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.leadText = item.LeadText
	st.outputText = item.OutputText
	st.model = generator.Model(item.Model)
	st.tone = generator.Tone(item.Tone)
	st.selectedID = item.ID
}

// setFailure clears the output after a failed generation.
func (st *appState) setFailure() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.outputText = ""
	st.selectedID = ""
}

// activate restores a historical item without regenerating.
func (st *appState) activate(item history.Item) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.leadText = item.LeadText
	st.outputText = item.OutputText
	st.model = generator.Model(item.Model)
	st.tone = generator.Tone(item.Tone)
	st.selectedID = item.ID
}

func (st *appState) snapshot() stateView {
	st.mu.Lock()
	defer st.mu.Unlock()
	return stateView{
		LeadText:   st.leadText,
		OutputText: st.outputText,
		Model:      st.model,
		Tone:       st.tone,
		SelectedID: st.selectedID,
	}
}
