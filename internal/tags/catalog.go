package tags

// 静态标签目录：分类名 → 有序标签列表。运行期只读。
var catalog = []Category{
    {Name: "Goods", Tags: []string{
        "Free Pizza", "Free Food", "Free Coffee", "Free T-Shirts",
        "Free Stickers", "Free Snacks", "Free Books", "Giveaways",
    }},
    {Name: "Topic", Tags: []string{
        "Technology", "Science", "Art & Design", "Volunteering",
        "Sustainability", "Health & Wellness", "Languages", "Entrepreneurship",
    }},
    {Name: "Career", Tags: []string{
        "Career Fair", "Networking", "Resume Workshop", "Internships",
        "Mock Interviews", "Company Talks", "Research Opportunities",
    }},
    {Name: "Entertainment", Tags: []string{
        "Music", "Movies", "Gaming", "Sports", "Comedy", "Trivia Night", "Dance",
    }},
}

// Category 一个分类及其标签
type Category struct {
    Name string   `json:"name"`
    Tags []string `json:"tags"`
}

var valid = func() map[string]struct{} {
    m := make(map[string]struct{})
    for _, c := range catalog {
        for _, t := range c.Tags {
            m[t] = struct{}{}
        }
    }
    return m
}()

// Categories 返回全部分类（目录顺序）
func Categories() []Category { return catalog }

// All 返回全部合法标签（目录顺序）
func All() []string {
    out := make([]string, 0, len(valid))
    for _, c := range catalog {
        out = append(out, c.Tags...)
    }
    return out
}

// IsValid 判断标签是否在目录内
func IsValid(tag string) bool {
    _, ok := valid[tag]
    return ok
}

// Validate 校验一组标签：全部在目录内且无重复，返回首个非法值
func Validate(ts []string) (string, bool) {
    seen := make(map[string]struct{}, len(ts))
    for _, t := range ts {
        if !IsValid(t) {
            return t, false
        }
        if _, dup := seen[t]; dup {
            return t, false
        }
        seen[t] = struct{}{}
    }
    return "", true
}
