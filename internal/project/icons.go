package project

import "encoding/base64"

// launcherIconPNG is a 48x48 placeholder launcher bitmap. It is written under
// the .webp names Android Studio uses; the platform decodes either format.
const launcherIconPNG = "iVBORw0KGgoAAAANSUhEUgAAADAAAAAwCAYAAABXAvmHAAAACXBIWXMAAAsTAAALEwEAmpwYAAAE0klEQVR4nO2ZbUxbZRjHT9cYjIkfjDF+UPPFZH7wi9n84BcTtqjJlhk3E6PZZsQPS1xcNBmZcXMuZlsEGZtzZMzCNByMybIJIyBjkAK90VJaaHt7e3t7z2lPe3vb0/dy7Glt9720p7fVhbDEJ3mSJs95/v/nd57zvA/Jw+FwBx2/YxJ8YszyzxUjf0/k+D9A4oV34bCGf8Dx+Sce488QZ9gfpPg1S3fDWEAhWlgIkMJh4gzGRZ4XwmCZwMETCw8zPH+rp7v7VYlE8o3JZOqAAR/7JnMdJlPH5cuXv5FKpW92dXW9WOL4NSLPgzfD8A5+GRzYZzAY6mtra+H06dOg1WpBLpcjYxz4e4lEcnL92lrvyLyGIAXhFKk0GN6j6dSeAckkHD9+PGs8A/L32trawO/zvZGrT4/b/XNJApIk+0wm00MIfPr06axQCPzW7M7r9fV9iesnFAodKirg8OHDgOFRK86cOZMVhgA4Ho+DzWa7hRuTSCQOFBUQjUYhEAhAX19fHjgE0nNGo9GrOI1JNBpNFxVw7NixrHgIPHnyJM8iBP78y2Phek61t4vKsoAzZ85khUXA6dOnEXwcjb29vT8WnkKS9GIwGARYXl7OS58ICMGRjkgk0k+S5K3CHbjJ5XK/+qZjIRAOh8Hr9SYUV678Wd/Q8D4MJuU4+Hl9PJGAsAiPAJ/P9wjXj9/vryobQOJ0nTaZRvN6QFZX13zx/n1Tz9/b88XwHV9d/Rbb19TU1CTuwr6+vpIHQ9TDV4F3dnbKC3qgr6/vYXVVFTQ2NkJ1dXXGG/Q8zAbWJvvV1tYO7e3tjoIAPT09yTffLlmk5+UWpQ0FLQFxXLuufhQXJLe5Q5ubxAW1Wj0gXrYZ4KdPfmS1WlFaREqxQnB2u91v/1JV9cVOeTweP0TTNPhptpehKCCXyWhZl0pDU1NTe4XAl5eXoVQrQWVZS+jW+npYWFhIQNFEIAZiIaZkgIGBgX0lsQcF+P1+WCVJmJubS0DR1NzcDIiJmAUB4vH4EQzgnsfjJPv7fw1FQyFyZmbtDUHlU4aNjY0gDoBi3TDb7f9EZTLpkFKpjHZ2dtYXhcOgJD5y+PBhIAhiyqqrJTNzc3PlA2hvfyQqk0rFdl1dHQwODIjyO61QKHDwhN/vnygfAEmSP/l8Hl9TUxOcPfsRymkcPM3k5DhiiTFLBWDdbjdyqYmJiXkfRX0bpihbS3PzHfF4PPZSQ0PDcUyqNRZlbvZZrfNl84DBYPgSt4CPj4/D8+fP08ViMbDb7ShFKwEi6+sHWZadKxtAo9E8xgEolUqYnp7OCsMFTk1JlMsrKzG5XF5fCYD3cQDDw8N5sAxwZv/hw+GyjsRVVVVvcfbV5OQkLrlRxnM7Vq1WX8+1t9Tp9IvlBCDdbjfXD1qt1ivce1P6b+i+jfWpMgCCwWDIYDDAhQsXMuCKi4vv8Yd+y+Vy/0KaZrx27fr1GYKgPHq9XnzlypVpgiCeJt+rJx4Oh2NFwWO3BI7jt3U63YRWq0VlGJVm5HCtra21c7mcXalU2JaWlr4uc//iQhyORDabkOe3j4SIrfTnYJaXV54Eg8FWnucrbCf7lN5ObtnnX+T+BTuJ0K+ifuG2AAAAAElFTkSuQmCC"

// launcherDensities are the mipmap buckets that receive a bitmap icon.
var launcherDensities = []string{"mdpi", "hdpi", "xhdpi", "xxhdpi", "xxxhdpi"}

// LauncherIcon returns the decoded placeholder icon bytes.
func LauncherIcon() []byte {
	b, err := base64.StdEncoding.DecodeString(launcherIconPNG)
	if err != nil {
		panic("project: invalid embedded launcher icon: " + err.Error())
	}
	return b
}

var launcherIcon = LauncherIcon()

func iconFiles() []File {
	files := make([]File, 0, len(launcherDensities)*2)
	for _, d := range launcherDensities {
		dir := "app/src/main/res/mipmap-" + d
		files = append(files,
			BinaryFile(dir+"/ic_launcher.webp", launcherIcon),
			BinaryFile(dir+"/ic_launcher_round.webp", launcherIcon),
		)
	}
	return files
}
