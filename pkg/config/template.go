package config

// Template is the starter configuration written by 'goswiftlint init'.
const Template = `# goswiftlint configuration
# Severity for rules that do not set their own: error, warning, or info.
severity_default: warning

# Glob patterns to skip during discovery.
ignore:
  - ".build/**"
  - "Pods/**"

# Per-rule overrides. Run 'goswiftlint rules' for the full catalog.
rules:
  line-length:
    options:
      max-length: 120
  # Opt-in rules run only when enabled explicitly:
  # todo:
  #   enabled: true
  # extension-access-modifier:
  #   enabled: true
`
