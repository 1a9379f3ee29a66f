package model

// TightenForGeneration overrides every model's extra-fields policy to
// ExtraForbid unless it is exactly ExtraAllow, and returns a restore function
// that puts the prior values back. Callers must defer the restore so it runs
// on every exit path, including a failed generation.
//
// Without the override, an unset or ignore policy leaves the generated shape
// open and the downstream compiler emits an index signature on every
// interface. ExtraAllow is respected because the user explicitly opted into
// permissive shapes. Models already at ExtraForbid are left untouched and
// skipped during restoration.
func TightenForGeneration(models []Model) (restore func()) {
	type prior struct {
		model  Model
		policy ExtraPolicy
	}

	var priors []prior
	for _, m := range models {
		switch m.ExtraPolicy() {
		case ExtraAllow, ExtraForbid:
			continue
		}
		priors = append(priors, prior{model: m, policy: m.ExtraPolicy()})
		m.SetExtraPolicy(ExtraForbid)
	}

	return func() {
		for _, p := range priors {
			p.model.SetExtraPolicy(p.policy)
		}
	}
}
