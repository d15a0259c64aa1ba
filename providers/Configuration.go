package providers

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
	"github.com/redexp/familymuseum-lsp/i18n"
	"github.com/redexp/familymuseum-lsp/museum"
	. "github.com/redexp/familymuseum-lsp/types"
)

func ConfigurationChange(_ *Ctx, config *ClientConfiguration) (err error) {
	if root == nil {
		return errNotInitialized
	}

	err = applyClientConfiguration(config)
	observeEvent("config")

	Reload()

	return
}

type ClientConfiguration struct {
	Locale        string `json:"locale" mapstructure:"locale"`
	Virtualize    *bool  `json:"virtualize" mapstructure:"virtualize"`
	PageSize      int    `json:"page_size" mapstructure:"page_size"`
	InferSiblings *bool  `json:"infer_siblings" mapstructure:"infer_siblings"`
}

func GetClientConfiguration(src any) (res ClientConfiguration, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

// applyClientConfiguration overrides the settings of the current root.
// Zero fields keep the current value.
func applyClientConfiguration(config *ClientConfiguration) (err error) {
	if config.Locale != "" {
		err = i18n.SetLocale(config.Locale)
	}

	root.Configure(func(s *museum.Settings) {
		if err == nil && config.Locale != "" {
			s.Locale = config.Locale
		}

		if config.Virtualize != nil {
			s.Virtual.Force = *config.Virtualize
		}

		if config.PageSize > 0 {
			s.Virtual.PageSize = config.PageSize
		}

		if config.InferSiblings != nil {
			s.InferSiblings = *config.InferSiblings
		}
	})

	return
}

type ConfigurationHandlers struct {
	Change ConfigChangeFunc
}

func (req *ConfigurationHandlers) Handle(ctx *Ctx) (res any, validMethod bool, validParams bool, err error) {
	switch ctx.Method {
	case ConfigChangeMethod:
		validMethod = true

		var params ClientConfiguration
		if err = json.Unmarshal(ctx.Params, &params); err == nil {
			validParams = true
			err = req.Change(ctx, &params)
		}
	}

	return
}

const ConfigChangeMethod = "config/change"

type ConfigChangeFunc func(*Ctx, *ClientConfiguration) error
