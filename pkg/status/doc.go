/*
Package status writes corrected records and tracks what happened to each file.

	            +-------------+
	            |   Manager   |
	            +------+------+
	                   |
	      +------------+-----------+
	      |                        |
	+-----+------+          +------+------+
	| WriteFile  |          |  TrackFile  |
	|  (out dir) |          |  (summary)  |
	+------------+          +-------------+

🎯 Purpose:
- Writes corrected JSON into the output directory under the input filename
- Records one outcome per processed file (fixed, unmatched, failed)
- Tallies the end-of-run summary

⚡ Notes:
- The output directory must already exist; it is never created
- Existing output files are overwritten
- A failed write leaves no tracked "fixed" entry, the caller tracks it as failed

🔍 Example:

	mgr := status.New(cfg.OutputDir, zerolog.Ctx(ctx))

	if err := mgr.WriteFile(ctx, name, content); err != nil {
		mgr.TrackFile(ctx, status.FileInfo{Name: name, Status: status.StatusFailed, Error: err})
	}

	summary := mgr.Summary()
*/
package status
