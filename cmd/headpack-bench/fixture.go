package main

// twitterUserFixture is a real-world-shaped JSON payload (a Twitter user
// object) used as the default benchmark input. Same shape as the sample
// object in the original proof-of-concept.
const twitterUserFixture = `{
  "id": 1186275104,
  "id_str": "1186275104",
  "name": "AYUMI",
  "screen_name": "ayuu0123",
  "location": "",
  "description": "element of the profile, blank in this sample",
  "url": null,
  "entities": {
    "description": {
      "urls": []
    }
  },
  "protected": false,
  "followers_count": 262,
  "friends_count": 252,
  "listed_count": 0,
  "created_at": "Sat Feb 16 13:40:25 +0000 2013",
  "favourites_count": 235,
  "utc_offset": null,
  "time_zone": null,
  "geo_enabled": false,
  "verified": false,
  "statuses_count": 1769,
  "lang": "en",
  "contributors_enabled": false,
  "is_translator": false,
  "is_translation_enabled": false,
  "profile_background_color": "C0DEED",
  "profile_background_image_url": "http://abs.twimg.com/images/themes/theme1/bg.png",
  "profile_background_image_url_https": "https://abs.twimg.com/images/themes/theme1/bg.png",
  "profile_background_tile": false,
  "profile_image_url": "http://pbs.twimg.com/profile_images/497760886795153410/LDjAwR_y_normal.jpeg",
  "profile_image_url_https": "https://pbs.twimg.com/profile_images/497760886795153410/LDjAwR_y_normal.jpeg",
  "profile_banner_url": "https://pbs.twimg.com/profile_banners/1186275104/1409318784",
  "profile_link_color": "0084B4",
  "profile_sidebar_border_color": "C0DEED",
  "profile_sidebar_fill_color": "DDEEF6",
  "profile_text_color": "333333",
  "profile_use_background_image": true,
  "default_profile": true,
  "default_profile_image": false,
  "following": false,
  "follow_request_sent": false,
  "notifications": false
}`
