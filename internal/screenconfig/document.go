package screenconfig

const (
	// MinDisplayWidth and MinDisplayHeight are the smallest usable viewport.
	MinDisplayWidth  = 800
	MinDisplayHeight = 600

	// Processing dimensions used by the downstream OMR stages.
	DefaultProcessingWidth  = 666
	DefaultProcessingHeight = 820
)

// Dimensions holds the viewport and processing sizes.
type Dimensions struct {
	DisplayWidth     int `json:"display_width"`
	DisplayHeight    int `json:"display_height"`
	ProcessingHeight int `json:"processing_height"`
	ProcessingWidth  int `json:"processing_width"`
}

// ThresholdParams are passed through unchanged to the bubble threshold stage.
type ThresholdParams struct {
	GammaLow             float64 `json:"GAMMA_LOW"`
	MinGap               int     `json:"MIN_GAP"`
	MinJump              int     `json:"MIN_JUMP"`
	ConfidentSurplus     int     `json:"CONFIDENT_SURPLUS"`
	JumpDelta            int     `json:"JUMP_DELTA"`
	PageTypeForThreshold string  `json:"PAGE_TYPE_FOR_THRESHOLD"`
}

// AlignmentParams are passed through unchanged to the alignment stage.
type AlignmentParams struct {
	AutoAlign bool `json:"auto_align"`
	MatchCol  int  `json:"match_col"`
	MaxSteps  int  `json:"max_steps"`
	Stride    int  `json:"stride"`
	Thickness int  `json:"thickness"`
}

// Outputs controls what the pipeline shows and saves.
type Outputs struct {
	ShowImageLevel            int  `json:"show_image_level"`
	SaveImageLevel            int  `json:"save_image_level"`
	SaveDetections            bool `json:"save_detections"`
	FilterOutMultimarkedFiles bool `json:"filter_out_multimarked_files"`
}

// Document is the config.json written by the generator.
type Document struct {
	Dimensions      Dimensions      `json:"dimensions"`
	ThresholdParams ThresholdParams `json:"threshold_params"`
	AlignmentParams AlignmentParams `json:"alignment_params"`
	Outputs         Outputs         `json:"outputs"`
}

// DefaultDocument returns a document holding the fixed defaults and the given
// display size.
func DefaultDocument(displayWidth, displayHeight int) Document {
	return Document{
		Dimensions: Dimensions{
			DisplayWidth:     displayWidth,
			DisplayHeight:    displayHeight,
			ProcessingHeight: DefaultProcessingHeight,
			ProcessingWidth:  DefaultProcessingWidth,
		},
		ThresholdParams: ThresholdParams{
			GammaLow:             0.7,
			MinGap:               30,
			MinJump:              25,
			ConfidentSurplus:     5,
			JumpDelta:            30,
			PageTypeForThreshold: "white",
		},
		AlignmentParams: AlignmentParams{
			AutoAlign: false,
			MatchCol:  5,
			MaxSteps:  20,
			Stride:    1,
			Thickness: 3,
		},
		Outputs: Outputs{
			// Level 5 enables the template layout display.
			ShowImageLevel:            5,
			SaveImageLevel:            0,
			SaveDetections:            true,
			FilterOutMultimarkedFiles: false,
		},
	}
}
