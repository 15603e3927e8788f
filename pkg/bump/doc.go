/*
Package bump implements the scan-match-rewrite pass over version markers.

	+-------------+      +-------------+      +-------------+
	|   Pattern   | ---> |   Rewrite   | ---> |   Engine    |
	| (prefix,ver)|      | (one text)  |      | (many files)|
	+-------------+      +-------------+      +------+------+
	                                                 |
	                                          +------+------+
	                                          |   Result    |
	                                          +-------------+

🎯 Purpose:
- Finds every occurrence of a version marker such as "_v12"
- Computes the new version for each occurrence (increment or reset to 1)
- Rewrites a file only when at least one occurrence actually changed

🔄 Flow:
1. Engine.Run short-circuits when the mode is ModeNoOp
2. Each path is read through the engine's afero.Fs
3. Rewrite substitutes the differing matches and reports them
4. Changed files are written back in full, others are never touched

⚡ Guarantees:
- A failing file is recorded in Result.Failures and the batch continues
- Bytes outside matched spans are preserved, line endings included
- The same input always produces the same output

🔍 Example:

	pattern, err := bump.CompilePattern(bump.DefaultPattern)
	if err != nil {
		return err
	}

	engine := bump.NewEngine(afero.NewOsFs())
	result, err := engine.Run(ctx, paths, pattern, bump.ModeIncrement)
	if err != nil {
		return err
	}

	fmt.Printf("%d of %d files updated\n", result.Changed, result.Scanned)
*/
package bump
