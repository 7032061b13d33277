package model

// Turn is one utterance and the reply it produced.
type Turn struct {
	Input string `json:"input" yaml:"input"`
	Reply string `json:"reply" yaml:"reply"`
}
