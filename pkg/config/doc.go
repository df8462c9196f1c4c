/*
Package config loads album documents.

	            +-------------+
	            |    Album    |
	            |  (document) |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   JSON    | |  YAML   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🔄 Flow:
1. Reads the document from disk
2. Picks a parser by file extension
3. Makes a relative base absolute (relative to the document)
4. Expands discover globs into images
5. Validates and fills defaults

The transformation list format is shared by JSON and YAML and follows the
externally tagged form:

	{
	  "name": "Holiday",
	  "base": "/photos/holiday",
	  "transformations": {
	    "bw": ["Normalize", {"Size": {"width": 800, "height": 600}}]
	  },
	  "images": [
	    {"filename": "beach.jpg"},
	    {"filename": "sunset.jpg", "transformations": "bw"},
	    "pier.jpg"
	  ]
	}

Set references are not checked here; a missing set is reported when the album
is resolved.
*/
package config
