/*
Package config loads and validates rehost settings.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+  +----+----+  +----+----+
	|   YAML   |  |   HCL   |  |  JSON   |
	|  Parser  |  | Parser  |  | Parser  |
	+----------+  +---------+  +---------+

🎯 Purpose:
- Reads an optional config file (format picked by extension)
- Applies defaults for every unset field
- Validates labels, globs and extra runner tokens before a run starts

🔄 Flow:
1. Parser decodes the file into Config (unknown keys are rejected)
2. Validate fills defaults and cleans paths
3. The CLI overlays its flags on top
4. LabelSet and Catalog hand typed values to the migration engine

🔍 Example:

	cfg, err := config.Load(ctx, ".rehost.hcl")
	if err != nil {
		return err
	}

	labels, _ := cfg.LabelSet()
	fmt.Println(labels.Value()) // [self-hosted, linux]

HCL files can read the environment:

	workflow_path = ".github/workflows"
	labels        = env.RUNNER_LABELS
	ignore        = ["release-*.yml"]
*/
package config
