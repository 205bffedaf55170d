package scoring

import "fmt"

// #region enums

// AssetType routes video-only rules.
type AssetType string

const (
	AssetImage AssetType = "image"
	AssetVideo AssetType = "video"
)

// ColorTemperature is the dominant color temperature of the creative.
type ColorTemperature string

const (
	TempWarm    ColorTemperature = "warm"
	TempCool    ColorTemperature = "cool"
	TempNeutral ColorTemperature = "neutral"
)

// BackgroundStyle is the categorical background type.
type BackgroundStyle string

const (
	BackgroundClean     BackgroundStyle = "clean"
	BackgroundLifestyle BackgroundStyle = "lifestyle"
	BackgroundAbstract  BackgroundStyle = "abstract"
)

// #endregion enums

// #region asset-properties

// AssetProperties holds the observable, pre-extracted attributes of a
// generated creative asset. Inputs only; request-scoped, never persisted.
// Video-only fields are pointers so absence is distinguishable from zero.
type AssetProperties struct {
	AssetID   string    `json:"asset_id"`
	AssetType AssetType `json:"asset_type"`

	ColorTemperature ColorTemperature `json:"color_temperature"`
	TextDensity      float64          `json:"text_density"`
	VisualComplexity float64          `json:"visual_complexity"`
	CTAPresent       bool             `json:"cta_present"`
	FacePresent      bool             `json:"face_present"`
	ProductVisible   bool             `json:"product_visible"`
	BackgroundStyle  BackgroundStyle  `json:"background_style"`
	Saturation       float64          `json:"saturation"`

	Pacing              *float64 `json:"pacing,omitempty"`
	SceneCount          *int     `json:"scene_count,omitempty"`
	NarrationPresent    *bool    `json:"narration_present,omitempty"`
	SFXPresent          *bool    `json:"sfx_present,omitempty"`
	OnScreenTextDensity *float64 `json:"on_screen_text_density,omitempty"`
}

// DefaultAssetProperties mirrors the schema defaults for fields the
// extraction layer did not measure.
func DefaultAssetProperties(assetID string, assetType AssetType) AssetProperties {
	return AssetProperties{
		AssetID:          assetID,
		AssetType:        assetType,
		ColorTemperature: TempNeutral,
		TextDensity:      0.15,
		VisualComplexity: 0.45,
		ProductVisible:   true,
		BackgroundStyle:  BackgroundClean,
		Saturation:       0.65,
	}
}

// Validate rejects malformed categorical values and out-of-range numeric
// inputs. Inputs are never silently clamped; only outputs are.
func (a AssetProperties) Validate() error {
	if a.AssetID == "" {
		return fmt.Errorf("asset_id must not be empty")
	}
	switch a.AssetType {
	case AssetImage, AssetVideo:
	default:
		return fmt.Errorf("asset_type must be image or video, got %q", a.AssetType)
	}
	switch a.ColorTemperature {
	case TempWarm, TempCool, TempNeutral:
	default:
		return fmt.Errorf("color_temperature must be warm, cool or neutral, got %q", a.ColorTemperature)
	}
	switch a.BackgroundStyle {
	case BackgroundClean, BackgroundLifestyle, BackgroundAbstract:
	default:
		return fmt.Errorf("background_style must be clean, lifestyle or abstract, got %q", a.BackgroundStyle)
	}
	if err := checkUnit("text_density", a.TextDensity); err != nil {
		return err
	}
	if err := checkUnit("visual_complexity", a.VisualComplexity); err != nil {
		return err
	}
	if err := checkUnit("saturation", a.Saturation); err != nil {
		return err
	}
	if a.Pacing != nil {
		if err := checkUnit("pacing", *a.Pacing); err != nil {
			return err
		}
	}
	if a.SceneCount != nil && *a.SceneCount < 0 {
		return fmt.Errorf("scene_count must be >= 0, got %d", *a.SceneCount)
	}
	if a.OnScreenTextDensity != nil {
		if err := checkUnit("on_screen_text_density", *a.OnScreenTextDensity); err != nil {
			return err
		}
	}
	return nil
}

func checkUnit(name string, v float64) error {
	if v < 0.0 || v > 1.0 {
		return fmt.Errorf("%s must be in [0,1], got %v", name, v)
	}
	return nil
}

// #endregion asset-properties
