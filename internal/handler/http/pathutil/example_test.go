package pathutil_test

import (
	"fmt"

	"newsblog/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/posts/12"))
	fmt.Println(pathutil.NormalizePath("/users/3/"))
	fmt.Println(pathutil.NormalizePath("/news?page=2"))

	// Output:
	// /posts/:id
	// /users/:id
	// /news
}
