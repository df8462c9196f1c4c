/*
Package operation implements what a command does with an album.

	+-------------+
	|    Album    |
	|  (loaded)   |
	+------+------+
	       |
	+------+------+
	|   Resolve   |
	| (pure, all  |
	|  or nothing)|
	+------+------+
	       |
	+------+------+      +-------------+
	|  Workspace  +----->+  Converter  |
	| (temp dir)  |      | (per image) |
	+------+------+      +-------------+
	       |
	+------+------+
	|   Viewer    |
	+-------------+

🎯 Operations:
- RunOperation: converts the album, shows it, then removes the outputs
- PlanOperation: resolves and prints the units without touching the filesystem

🔄 Flow of a run:
1. Resolve the whole album; a missing set or a bad path stops here
2. Create <temp>/album_creator_<uuid>
3. Convert images one at a time, stopping at the first failure
4. Open the viewer on the workspace and wait for it to exit
5. Remove the converted images and the workspace unless asked to keep them

Cleanup always runs once the workspace exists, including after a failed
conversion.

🤝 Interfaces:
- convert.Converter: turns one resolved unit into an output file
- Viewer: shows a directory to the user

🔍 Example:

	op, err := operation.NewRun(operation.Options{
		Album:     a,
		Converter: &convert.GraphicsMagick{Binary: "gm"},
		Viewer:    viewer.New("dolphin", "--new-window"),
	})
	if err != nil {
		return err
	}
	err = operation.NewRunner().Run(ctx, "run", op)
*/
package operation
