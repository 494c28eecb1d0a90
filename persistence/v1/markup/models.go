package markup

import "fmt"

func cacheKey(key string) string {
	return fmt.Sprintf(htmlKey, key)
}
